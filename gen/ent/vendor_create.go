// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicepipe/invoice-extractor/gen/ent/invoice"
	"github.com/invoicepipe/invoice-extractor/gen/ent/vendor"
)

// VendorCreate is the builder for creating a Vendor entity.
type VendorCreate struct {
	config
	mutation *VendorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *VendorCreate) SetName(v string) *VendorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAccountNumber sets the "account_number" field.
func (_c *VendorCreate) SetAccountNumber(v string) *VendorCreate {
	_c.mutation.SetAccountNumber(v)
	return _c
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_c *VendorCreate) SetNillableAccountNumber(v *string) *VendorCreate {
	if v != nil {
		_c.SetAccountNumber(*v)
	}
	return _c
}

// SetItemsSupplied sets the "items_supplied" field.
func (_c *VendorCreate) SetItemsSupplied(v string) *VendorCreate {
	_c.mutation.SetItemsSupplied(v)
	return _c
}

// SetNillableItemsSupplied sets the "items_supplied" field if the given value is not nil.
func (_c *VendorCreate) SetNillableItemsSupplied(v *string) *VendorCreate {
	if v != nil {
		_c.SetItemsSupplied(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *VendorCreate) SetCategory(v string) *VendorCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *VendorCreate) SetNillableCategory(v *string) *VendorCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetAddressLine1 sets the "address_line_1" field.
func (_c *VendorCreate) SetAddressLine1(v string) *VendorCreate {
	_c.mutation.SetAddressLine1(v)
	return _c
}

// SetNillableAddressLine1 sets the "address_line_1" field if the given value is not nil.
func (_c *VendorCreate) SetNillableAddressLine1(v *string) *VendorCreate {
	if v != nil {
		_c.SetAddressLine1(*v)
	}
	return _c
}

// SetAddressLine2 sets the "address_line_2" field.
func (_c *VendorCreate) SetAddressLine2(v string) *VendorCreate {
	_c.mutation.SetAddressLine2(v)
	return _c
}

// SetNillableAddressLine2 sets the "address_line_2" field if the given value is not nil.
func (_c *VendorCreate) SetNillableAddressLine2(v *string) *VendorCreate {
	if v != nil {
		_c.SetAddressLine2(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *VendorCreate) SetCity(v string) *VendorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *VendorCreate) SetNillableCity(v *string) *VendorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *VendorCreate) SetState(v string) *VendorCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *VendorCreate) SetNillableState(v *string) *VendorCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetZipCode sets the "zip_code" field.
func (_c *VendorCreate) SetZipCode(v string) *VendorCreate {
	_c.mutation.SetZipCode(v)
	return _c
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_c *VendorCreate) SetNillableZipCode(v *string) *VendorCreate {
	if v != nil {
		_c.SetZipCode(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *VendorCreate) SetContactEmail(v string) *VendorCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *VendorCreate) SetNillableContactEmail(v *string) *VendorCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *VendorCreate) SetContactPhone(v string) *VendorCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *VendorCreate) SetNillableContactPhone(v *string) *VendorCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetBankAccountNumber sets the "bank_account_number" field.
func (_c *VendorCreate) SetBankAccountNumber(v string) *VendorCreate {
	_c.mutation.SetBankAccountNumber(v)
	return _c
}

// SetNillableBankAccountNumber sets the "bank_account_number" field if the given value is not nil.
func (_c *VendorCreate) SetNillableBankAccountNumber(v *string) *VendorCreate {
	if v != nil {
		_c.SetBankAccountNumber(*v)
	}
	return _c
}

// SetRoutingNumber sets the "routing_number" field.
func (_c *VendorCreate) SetRoutingNumber(v string) *VendorCreate {
	_c.mutation.SetRoutingNumber(v)
	return _c
}

// SetNillableRoutingNumber sets the "routing_number" field if the given value is not nil.
func (_c *VendorCreate) SetNillableRoutingNumber(v *string) *VendorCreate {
	if v != nil {
		_c.SetRoutingNumber(*v)
	}
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *VendorCreate) SetBankName(v string) *VendorCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *VendorCreate) SetNillableBankName(v *string) *VendorCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetAccountPayee sets the "account_payee" field.
func (_c *VendorCreate) SetAccountPayee(v string) *VendorCreate {
	_c.mutation.SetAccountPayee(v)
	return _c
}

// SetNillableAccountPayee sets the "account_payee" field if the given value is not nil.
func (_c *VendorCreate) SetNillableAccountPayee(v *string) *VendorCreate {
	if v != nil {
		_c.SetAccountPayee(*v)
	}
	return _c
}

// SetTotalAmountPurchased sets the "total_amount_purchased" field.
func (_c *VendorCreate) SetTotalAmountPurchased(v float64) *VendorCreate {
	_c.mutation.SetTotalAmountPurchased(v)
	return _c
}

// SetNillableTotalAmountPurchased sets the "total_amount_purchased" field if the given value is not nil.
func (_c *VendorCreate) SetNillableTotalAmountPurchased(v *float64) *VendorCreate {
	if v != nil {
		_c.SetTotalAmountPurchased(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VendorCreate) SetCreatedAt(v time.Time) *VendorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VendorCreate) SetNillableCreatedAt(v *time.Time) *VendorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VendorCreate) SetUpdatedAt(v time.Time) *VendorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VendorCreate) SetNillableUpdatedAt(v *time.Time) *VendorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VendorCreate) SetID(v uuid.UUID) *VendorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VendorCreate) SetNillableID(v *uuid.UUID) *VendorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_c *VendorCreate) AddInvoiceIDs(ids ...uuid.UUID) *VendorCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_c *VendorCreate) AddInvoices(v ...*Invoice) *VendorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_c *VendorCreate) Mutation() *VendorMutation {
	return _c.mutation
}

// Save creates the Vendor in the database.
func (_c *VendorCreate) Save(ctx context.Context) (*Vendor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VendorCreate) SaveX(ctx context.Context) *Vendor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VendorCreate) defaults() {
	if _, ok := _c.mutation.TotalAmountPurchased(); !ok {
		v := vendor.DefaultTotalAmountPurchased
		_c.mutation.SetTotalAmountPurchased(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vendor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vendor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vendor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VendorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Vendor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAmountPurchased(); !ok {
		return &ValidationError{Name: "total_amount_purchased", err: errors.New(`ent: missing required field "Vendor.total_amount_purchased"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vendor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vendor.updated_at"`)}
	}
	return nil
}

func (_c *VendorCreate) sqlSave(ctx context.Context) (*Vendor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VendorCreate) createSpec() (*Vendor, *sqlgraph.CreateSpec) {
	var (
		_node = &Vendor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vendor.Table, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AccountNumber(); ok {
		_spec.SetField(vendor.FieldAccountNumber, field.TypeString, value)
		_node.AccountNumber = value
	}
	if value, ok := _c.mutation.ItemsSupplied(); ok {
		_spec.SetField(vendor.FieldItemsSupplied, field.TypeString, value)
		_node.ItemsSupplied = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(vendor.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.AddressLine1(); ok {
		_spec.SetField(vendor.FieldAddressLine1, field.TypeString, value)
		_node.AddressLine1 = value
	}
	if value, ok := _c.mutation.AddressLine2(); ok {
		_spec.SetField(vendor.FieldAddressLine2, field.TypeString, value)
		_node.AddressLine2 = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(vendor.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(vendor.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ZipCode(); ok {
		_spec.SetField(vendor.FieldZipCode, field.TypeString, value)
		_node.ZipCode = value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(vendor.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(vendor.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := _c.mutation.BankAccountNumber(); ok {
		_spec.SetField(vendor.FieldBankAccountNumber, field.TypeString, value)
		_node.BankAccountNumber = value
	}
	if value, ok := _c.mutation.RoutingNumber(); ok {
		_spec.SetField(vendor.FieldRoutingNumber, field.TypeString, value)
		_node.RoutingNumber = value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(vendor.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := _c.mutation.AccountPayee(); ok {
		_spec.SetField(vendor.FieldAccountPayee, field.TypeString, value)
		_node.AccountPayee = value
	}
	if value, ok := _c.mutation.TotalAmountPurchased(); ok {
		_spec.SetField(vendor.FieldTotalAmountPurchased, field.TypeFloat64, value)
		_node.TotalAmountPurchased = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vendor.InvoicesTable,
			Columns: []string{vendor.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VendorCreateBulk is the builder for creating many Vendor entities in bulk.
type VendorCreateBulk struct {
	config
	err      error
	builders []*VendorCreate
}

// Save creates the Vendor entities in the database.
func (_c *VendorCreateBulk) Save(ctx context.Context) ([]*Vendor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vendor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VendorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VendorCreateBulk) SaveX(ctx context.Context) []*Vendor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
