package testshapes

import (
	"sort"
	"sync"
	"time"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
	"github.com/mellemahp/smithy4go/prelude"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
	"github.com/mellemahp/smithy4go/validate"
)

var itemSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewStructureBuilder(smithy.ShapeID{Namespace: namespace, Name: "Item"}).
		PutMember("sku", prelude.String(), traits.Required{}, traits.MustPattern(`^[A-Z0-9-]+$`)).
		PutMember("quantity", prelude.Integer(), traits.Required{}, traits.RangeMin(1)).
		MustBuild()
})

// ItemSchema returns the Item structure schema.
func ItemSchema() *smithy.Schema { return itemSchema() }

// Item is one order line.
type Item struct {
	SKU      string
	Quantity int32
}

func (i Item) Schema() *smithy.Schema { return ItemSchema() }

func (i Item) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 2)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("sku"), serde.StringValue(i.SKU)); err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("quantity"), serde.IntegerValue(i.Quantity)); err != nil {
		return err
	}
	return st.End(schema)
}

// ItemBuilder accumulates Item members during deserialization.
type ItemBuilder struct {
	sku      serde.Required[string]
	quantity serde.Required[int32]
}

func NewItemBuilder() *ItemBuilder { return &ItemBuilder{} }

func (b *ItemBuilder) SetSKU(v string) *ItemBuilder {
	b.sku.Set(v)
	return b
}

func (b *ItemBuilder) SetQuantity(v int32) *ItemBuilder {
	b.quantity.Set(v)
	return b
}

func (b *ItemBuilder) DeserializeMember(member *smithy.Schema, d serde.Deserializer) error {
	switch member.MemberIndex() {
	case 0:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.sku.Set(v)
	case 1:
		v, err := d.ReadInteger(member)
		if err != nil {
			return err
		}
		b.quantity.Set(v)
	default:
		return d.Skip()
	}
	return nil
}

func (b *ItemBuilder) Validate(v *validate.Validator) {
	schema := ItemSchema()
	sku := schema.ExpectMember("sku")
	v.CheckRequired(sku, b.sku.IsSet())
	if s, ok := b.sku.Get(); ok {
		v.CheckString(sku, s)
	}
	quantity := schema.ExpectMember("quantity")
	v.CheckRequired(quantity, b.quantity.IsSet())
	if q, ok := b.quantity.Get(); ok {
		v.CheckInteger(quantity, int64(q))
	}
}

func (b *ItemBuilder) Correct() Item {
	return Item{SKU: b.sku.OrZero(), Quantity: b.quantity.OrZero()}
}

func (b *ItemBuilder) Build() (Item, error) {
	return b.BuildWithValidator(validate.NewDefault())
}

func (b *ItemBuilder) BuildWithValidator(v *validate.Validator) (Item, error) {
	return serde.BuildWith[Item](b, v)
}

var addressSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewStructureBuilder(smithy.ShapeID{Namespace: namespace, Name: "Address"}).
		PutMember("street", prelude.String(), traits.Required{}).
		PutMember("city", prelude.String(), traits.Required{}).
		MustBuild()
})

// AddressSchema returns the Address structure schema.
func AddressSchema() *smithy.Schema { return addressSchema() }

// Address is a nested structure member of Order.
type Address struct {
	Street string
	City   string
}

func (a Address) Schema() *smithy.Schema { return AddressSchema() }

func (a Address) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 2)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("street"), serde.StringValue(a.Street)); err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("city"), serde.StringValue(a.City)); err != nil {
		return err
	}
	return st.End(schema)
}

// AddressBuilder accumulates Address members during deserialization.
type AddressBuilder struct {
	street serde.Required[string]
	city   serde.Required[string]
}

func NewAddressBuilder() *AddressBuilder { return &AddressBuilder{} }

func (b *AddressBuilder) SetStreet(v string) *AddressBuilder {
	b.street.Set(v)
	return b
}

func (b *AddressBuilder) SetCity(v string) *AddressBuilder {
	b.city.Set(v)
	return b
}

func (b *AddressBuilder) DeserializeMember(member *smithy.Schema, d serde.Deserializer) error {
	switch member.MemberIndex() {
	case 0:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.street.Set(v)
	case 1:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.city.Set(v)
	default:
		return d.Skip()
	}
	return nil
}

func (b *AddressBuilder) Validate(v *validate.Validator) {
	schema := AddressSchema()
	v.CheckRequired(schema.ExpectMember("street"), b.street.IsSet())
	v.CheckRequired(schema.ExpectMember("city"), b.city.IsSet())
}

func (b *AddressBuilder) Correct() Address {
	return Address{Street: b.street.OrZero(), City: b.city.OrZero()}
}

func (b *AddressBuilder) Build() (Address, error) {
	return b.BuildWithValidator(validate.NewDefault())
}

func (b *AddressBuilder) BuildWithValidator(v *validate.Validator) (Address, error) {
	return serde.BuildWith[Address](b, v)
}

var orderItemsSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewListBuilder(smithy.ShapeID{Namespace: namespace, Name: "OrderItems"}).
		PutMember("member", ItemSchema()).
		MustBuild()
})

var tagMapSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewMapBuilder(smithy.ShapeID{Namespace: namespace, Name: "TagMap"}).
		PutMember("key", prelude.String()).
		PutMember("value", prelude.String()).
		MustBuild()
})

var orderSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewStructureBuilder(smithy.ShapeID{Namespace: namespace, Name: "Order"}).
		PutMember("id", prelude.String(), traits.Required{}, traits.LengthMin(1)).
		PutMember("items", orderItemsSchema(), traits.Required{}).
		PutMember("createdAt", prelude.Timestamp(), traits.Required{}).
		PutMember("tags", tagMapSchema()).
		PutMember("shipping", AddressSchema()).
		PutMember("payload", prelude.Blob()).
		PutMember("metadata", prelude.Document()).
		PutMember("status", StatusSchema()).
		PutMember("priority", PrioritySchema(), traits.JSONName{Name: "prio"}).
		MustBuild()
})

// OrderSchema returns the Order structure schema.
func OrderSchema() *smithy.Schema { return orderSchema() }

// Order exercises every aggregate member kind at once.
type Order struct {
	ID        string
	Items     []Item
	CreatedAt time.Time
	Tags      map[string]string
	Shipping  *Address
	Payload   []byte
	Metadata  document.Value
	Status    *Status
	Priority  *Priority
}

func (o Order) Schema() *smithy.Schema { return OrderSchema() }

func (o Order) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 9)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("id"), serde.StringValue(o.ID)); err != nil {
		return err
	}
	items := schema.ExpectMember("items")
	err = st.SerializeMember(items, serde.SerializeFunc(func(sc *smithy.Schema, ss serde.Serializer) error {
		ls, err := ss.WriteList(sc, len(o.Items))
		if err != nil {
			return err
		}
		elem := sc.ExpectMember("member")
		for _, item := range o.Items {
			if err := ls.SerializeElement(elem, item); err != nil {
				return err
			}
		}
		return ls.End(sc)
	}))
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("createdAt"), serde.TimestampValue(o.CreatedAt)); err != nil {
		return err
	}
	if o.Tags != nil {
		tags := schema.ExpectMember("tags")
		err = st.SerializeMember(tags, serde.SerializeFunc(func(sc *smithy.Schema, ss serde.Serializer) error {
			ms, err := ss.WriteMap(sc, len(o.Tags))
			if err != nil {
				return err
			}
			key, value := sc.ExpectMember("key"), sc.ExpectMember("value")
			for _, k := range sortedTagKeys(o.Tags) {
				if err := ms.SerializeEntry(key, value, k, serde.StringValue(o.Tags[k])); err != nil {
					return err
				}
			}
			return ms.End(sc)
		}))
		if err != nil {
			return err
		}
	}
	if o.Shipping != nil {
		if err := st.SerializeMember(schema.ExpectMember("shipping"), *o.Shipping); err != nil {
			return err
		}
	}
	if o.Payload != nil {
		if err := st.SerializeMember(schema.ExpectMember("payload"), serde.BlobValue(o.Payload)); err != nil {
			return err
		}
	}
	if o.Metadata != nil {
		if err := st.SerializeMember(schema.ExpectMember("metadata"), serde.DocumentValue{Value: o.Metadata}); err != nil {
			return err
		}
	}
	if o.Status != nil {
		if err := st.SerializeMember(schema.ExpectMember("status"), *o.Status); err != nil {
			return err
		}
	}
	if o.Priority != nil {
		if err := st.SerializeMember(schema.ExpectMember("priority"), *o.Priority); err != nil {
			return err
		}
	}
	return st.End(schema)
}

func sortedTagKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OrderBuilder accumulates Order members during deserialization. Nested
// Item and Address builders stay unbuilt until the order builds, so their
// violations land on the order's validator.
type OrderBuilder struct {
	id        serde.Required[string]
	items     []*ItemBuilder
	itemsSet  bool
	createdAt serde.Required[time.Time]
	tags      map[string]string
	shipping  serde.MaybeBuilt[Address]
	payload   []byte
	metadata  document.Value
	status    *Status
	priority  *Priority
}

func NewOrderBuilder() *OrderBuilder { return &OrderBuilder{} }

func (b *OrderBuilder) SetID(v string) *OrderBuilder {
	b.id.Set(v)
	return b
}

func (b *OrderBuilder) AddItem(item *ItemBuilder) *OrderBuilder {
	b.items = append(b.items, item)
	b.itemsSet = true
	return b
}

func (b *OrderBuilder) SetCreatedAt(v time.Time) *OrderBuilder {
	b.createdAt.Set(v)
	return b
}

func (b *OrderBuilder) SetShipping(a Address) *OrderBuilder {
	b.shipping = serde.Built(a)
	return b
}

func (b *OrderBuilder) DeserializeMember(member *smithy.Schema, d serde.Deserializer) error {
	switch member.MemberIndex() {
	case 0:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.id.Set(v)
	case 1:
		b.itemsSet = true
		elem := member.ExpectMember("member")
		return d.ReadList(member, func(dd serde.Deserializer) error {
			ib := NewItemBuilder()
			if err := dd.ReadStruct(elem, ib.DeserializeMember); err != nil {
				return err
			}
			b.items = append(b.items, ib)
			return nil
		})
	case 2:
		v, err := d.ReadTimestamp(member)
		if err != nil {
			return err
		}
		b.createdAt.Set(v)
	case 3:
		if d.IsNull() {
			return d.ReadNull()
		}
		value := member.ExpectMember("value")
		b.tags = map[string]string{}
		return d.ReadMap(member, func(key string, dd serde.Deserializer) error {
			v, err := dd.ReadString(value)
			if err != nil {
				return err
			}
			b.tags[key] = v
			return nil
		})
	case 4:
		if d.IsNull() {
			return d.ReadNull()
		}
		ab := NewAddressBuilder()
		if err := d.ReadStruct(member, ab.DeserializeMember); err != nil {
			return err
		}
		b.shipping = serde.Building[Address](ab)
	case 5:
		if d.IsNull() {
			return d.ReadNull()
		}
		v, err := d.ReadBlob(member)
		if err != nil {
			return err
		}
		b.payload = v
	case 6:
		if d.IsNull() {
			return d.ReadNull()
		}
		v, err := d.ReadDocument(member)
		if err != nil {
			return err
		}
		b.metadata = v
	case 7:
		if d.IsNull() {
			return d.ReadNull()
		}
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		s := Status(v)
		b.status = &s
	case 8:
		if d.IsNull() {
			return d.ReadNull()
		}
		v, err := d.ReadInteger(member)
		if err != nil {
			return err
		}
		p := Priority(v)
		b.priority = &p
	default:
		return d.Skip()
	}
	return nil
}

func (b *OrderBuilder) Validate(v *validate.Validator) {
	schema := OrderSchema()
	id := schema.ExpectMember("id")
	v.CheckRequired(id, b.id.IsSet())
	if s, ok := b.id.Get(); ok {
		v.CheckString(id, s)
	}
	items := schema.ExpectMember("items")
	v.CheckRequired(items, b.itemsSet)
	if v.Enter(items) {
		for _, ib := range b.items {
			ib.Validate(v)
		}
		v.Leave()
	}
	v.CheckRequired(schema.ExpectMember("createdAt"), b.createdAt.IsSet())
	if b.shipping.IsSet() {
		shipping := schema.ExpectMember("shipping")
		if v.Enter(shipping) {
			b.shipping.Validate(v)
			v.Leave()
		}
	}
	if b.status != nil {
		v.CheckEnum(schema.ExpectMember("status"), string(*b.status))
	}
	if b.priority != nil {
		v.CheckIntEnum(schema.ExpectMember("priority"), int32(*b.priority))
	}
}

func (b *OrderBuilder) Correct() Order {
	items := serde.CorrectSlice[Item](b.items)
	if items == nil {
		items = []Item{}
	}
	return Order{
		ID:        b.id.OrZero(),
		Items:     items,
		CreatedAt: b.createdAt.OrElse(serde.DefaultTimestamp),
		Tags:      b.tags,
		Shipping:  b.shipping.CorrectOptional(),
		Payload:   b.payload,
		Metadata:  b.metadata,
		Status:    b.status,
		Priority:  b.priority,
	}
}

func (b *OrderBuilder) Build() (Order, error) {
	return b.BuildWithValidator(validate.NewDefault())
}

func (b *OrderBuilder) BuildWithValidator(v *validate.Validator) (Order, error) {
	return serde.BuildWith[Order](b, v)
}
