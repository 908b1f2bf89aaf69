package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().MaxLen(255).Unique(),
		// contact and banking metadata, filled in from the best extraction
		// seen so far; all optional
		field.String("account_number").Optional(),
		field.String("items_supplied").Optional(),
		field.String("category").Optional(),
		field.String("address_line_1").Optional(),
		field.String("address_line_2").Optional(),
		field.String("city").Optional(),
		field.String("state").Optional(),
		field.String("zip_code").Optional(),
		field.String("contact_email").Optional(),
		field.String("contact_phone").Optional(),
		field.String("bank_account_number").Optional(),
		field.String("routing_number").Optional(),
		field.String("bank_name").Optional(),
		field.String("account_payee").Optional(),
		field.Float("total_amount_purchased").
			Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vendor -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}
