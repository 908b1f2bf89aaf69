package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vendor_id", uuid.UUID{}),
		field.String("invoice_number").NotEmpty().MaxLen(100),
		field.Time("invoice_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("status").
			Default(string(constants.InvoicePendingReview)).
			Validate(utils.EnumValidator(constants.InvoiceStatuses()...)),
		field.String("file_name").Optional(),
		field.String("media_type").NotEmpty().
			Validate(utils.EnumValidator(constants.MediaTypes...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE vendor (FK: invoices.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("invoices").
			Field("vendor_id").
			Required().
			Unique(),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor_id", "invoice_number").Unique(),
		index.Fields("status"),
		index.Fields("invoice_date"),
	}
}
