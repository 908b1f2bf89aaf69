// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoicepipe/invoice-extractor/gen/ent/invoice"
	"github.com/invoicepipe/invoice-extractor/gen/ent/predicate"
	"github.com/invoicepipe/invoice-extractor/gen/ent/vendor"
)

// VendorUpdate is the builder for updating Vendor entities.
type VendorUpdate struct {
	config
	hooks    []Hook
	mutation *VendorMutation
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdate) Where(ps ...predicate.Vendor) *VendorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VendorUpdate) SetName(v string) *VendorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableName(v *string) *VendorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *VendorUpdate) SetAccountNumber(v string) *VendorUpdate {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableAccountNumber(v *string) *VendorUpdate {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *VendorUpdate) ClearAccountNumber() *VendorUpdate {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetItemsSupplied sets the "items_supplied" field.
func (_u *VendorUpdate) SetItemsSupplied(v string) *VendorUpdate {
	_u.mutation.SetItemsSupplied(v)
	return _u
}

// SetNillableItemsSupplied sets the "items_supplied" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableItemsSupplied(v *string) *VendorUpdate {
	if v != nil {
		_u.SetItemsSupplied(*v)
	}
	return _u
}

// ClearItemsSupplied clears the value of the "items_supplied" field.
func (_u *VendorUpdate) ClearItemsSupplied() *VendorUpdate {
	_u.mutation.ClearItemsSupplied()
	return _u
}

// SetCategory sets the "category" field.
func (_u *VendorUpdate) SetCategory(v string) *VendorUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableCategory(v *string) *VendorUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *VendorUpdate) ClearCategory() *VendorUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetAddressLine1 sets the "address_line_1" field.
func (_u *VendorUpdate) SetAddressLine1(v string) *VendorUpdate {
	_u.mutation.SetAddressLine1(v)
	return _u
}

// SetNillableAddressLine1 sets the "address_line_1" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableAddressLine1(v *string) *VendorUpdate {
	if v != nil {
		_u.SetAddressLine1(*v)
	}
	return _u
}

// ClearAddressLine1 clears the value of the "address_line_1" field.
func (_u *VendorUpdate) ClearAddressLine1() *VendorUpdate {
	_u.mutation.ClearAddressLine1()
	return _u
}

// SetAddressLine2 sets the "address_line_2" field.
func (_u *VendorUpdate) SetAddressLine2(v string) *VendorUpdate {
	_u.mutation.SetAddressLine2(v)
	return _u
}

// SetNillableAddressLine2 sets the "address_line_2" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableAddressLine2(v *string) *VendorUpdate {
	if v != nil {
		_u.SetAddressLine2(*v)
	}
	return _u
}

// ClearAddressLine2 clears the value of the "address_line_2" field.
func (_u *VendorUpdate) ClearAddressLine2() *VendorUpdate {
	_u.mutation.ClearAddressLine2()
	return _u
}

// SetCity sets the "city" field.
func (_u *VendorUpdate) SetCity(v string) *VendorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableCity(v *string) *VendorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *VendorUpdate) ClearCity() *VendorUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *VendorUpdate) SetState(v string) *VendorUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableState(v *string) *VendorUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *VendorUpdate) ClearState() *VendorUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *VendorUpdate) SetZipCode(v string) *VendorUpdate {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableZipCode(v *string) *VendorUpdate {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// ClearZipCode clears the value of the "zip_code" field.
func (_u *VendorUpdate) ClearZipCode() *VendorUpdate {
	_u.mutation.ClearZipCode()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *VendorUpdate) SetContactEmail(v string) *VendorUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableContactEmail(v *string) *VendorUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *VendorUpdate) ClearContactEmail() *VendorUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *VendorUpdate) SetContactPhone(v string) *VendorUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableContactPhone(v *string) *VendorUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *VendorUpdate) ClearContactPhone() *VendorUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetBankAccountNumber sets the "bank_account_number" field.
func (_u *VendorUpdate) SetBankAccountNumber(v string) *VendorUpdate {
	_u.mutation.SetBankAccountNumber(v)
	return _u
}

// SetNillableBankAccountNumber sets the "bank_account_number" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableBankAccountNumber(v *string) *VendorUpdate {
	if v != nil {
		_u.SetBankAccountNumber(*v)
	}
	return _u
}

// ClearBankAccountNumber clears the value of the "bank_account_number" field.
func (_u *VendorUpdate) ClearBankAccountNumber() *VendorUpdate {
	_u.mutation.ClearBankAccountNumber()
	return _u
}

// SetRoutingNumber sets the "routing_number" field.
func (_u *VendorUpdate) SetRoutingNumber(v string) *VendorUpdate {
	_u.mutation.SetRoutingNumber(v)
	return _u
}

// SetNillableRoutingNumber sets the "routing_number" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableRoutingNumber(v *string) *VendorUpdate {
	if v != nil {
		_u.SetRoutingNumber(*v)
	}
	return _u
}

// ClearRoutingNumber clears the value of the "routing_number" field.
func (_u *VendorUpdate) ClearRoutingNumber() *VendorUpdate {
	_u.mutation.ClearRoutingNumber()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *VendorUpdate) SetBankName(v string) *VendorUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableBankName(v *string) *VendorUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *VendorUpdate) ClearBankName() *VendorUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetAccountPayee sets the "account_payee" field.
func (_u *VendorUpdate) SetAccountPayee(v string) *VendorUpdate {
	_u.mutation.SetAccountPayee(v)
	return _u
}

// SetNillableAccountPayee sets the "account_payee" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableAccountPayee(v *string) *VendorUpdate {
	if v != nil {
		_u.SetAccountPayee(*v)
	}
	return _u
}

// ClearAccountPayee clears the value of the "account_payee" field.
func (_u *VendorUpdate) ClearAccountPayee() *VendorUpdate {
	_u.mutation.ClearAccountPayee()
	return _u
}

// SetTotalAmountPurchased sets the "total_amount_purchased" field.
func (_u *VendorUpdate) SetTotalAmountPurchased(v float64) *VendorUpdate {
	_u.mutation.ResetTotalAmountPurchased()
	_u.mutation.SetTotalAmountPurchased(v)
	return _u
}

// SetNillableTotalAmountPurchased sets the "total_amount_purchased" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableTotalAmountPurchased(v *float64) *VendorUpdate {
	if v != nil {
		_u.SetTotalAmountPurchased(*v)
	}
	return _u
}

// AddTotalAmountPurchased adds value to the "total_amount_purchased" field.
func (_u *VendorUpdate) AddTotalAmountPurchased(v float64) *VendorUpdate {
	_u.mutation.AddTotalAmountPurchased(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorUpdate) SetCreatedAt(v time.Time) *VendorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableCreatedAt(v *time.Time) *VendorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorUpdate) SetUpdatedAt(v time.Time) *VendorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *VendorUpdate) AddInvoiceIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *VendorUpdate) AddInvoices(v ...*Invoice) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdate) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *VendorUpdate) ClearInvoices() *VendorUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *VendorUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *VendorUpdate) RemoveInvoices(v ...*Invoice) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VendorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(vendor.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(vendor.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsSupplied(); ok {
		_spec.SetField(vendor.FieldItemsSupplied, field.TypeString, value)
	}
	if _u.mutation.ItemsSuppliedCleared() {
		_spec.ClearField(vendor.FieldItemsSupplied, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(vendor.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(vendor.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.AddressLine1(); ok {
		_spec.SetField(vendor.FieldAddressLine1, field.TypeString, value)
	}
	if _u.mutation.AddressLine1Cleared() {
		_spec.ClearField(vendor.FieldAddressLine1, field.TypeString)
	}
	if value, ok := _u.mutation.AddressLine2(); ok {
		_spec.SetField(vendor.FieldAddressLine2, field.TypeString, value)
	}
	if _u.mutation.AddressLine2Cleared() {
		_spec.ClearField(vendor.FieldAddressLine2, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(vendor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(vendor.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(vendor.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(vendor.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(vendor.FieldZipCode, field.TypeString, value)
	}
	if _u.mutation.ZipCodeCleared() {
		_spec.ClearField(vendor.FieldZipCode, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(vendor.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(vendor.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(vendor.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(vendor.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountNumber(); ok {
		_spec.SetField(vendor.FieldBankAccountNumber, field.TypeString, value)
	}
	if _u.mutation.BankAccountNumberCleared() {
		_spec.ClearField(vendor.FieldBankAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.RoutingNumber(); ok {
		_spec.SetField(vendor.FieldRoutingNumber, field.TypeString, value)
	}
	if _u.mutation.RoutingNumberCleared() {
		_spec.ClearField(vendor.FieldRoutingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(vendor.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(vendor.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.AccountPayee(); ok {
		_spec.SetField(vendor.FieldAccountPayee, field.TypeString, value)
	}
	if _u.mutation.AccountPayeeCleared() {
		_spec.ClearField(vendor.FieldAccountPayee, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmountPurchased(); ok {
		_spec.SetField(vendor.FieldTotalAmountPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmountPurchased(); ok {
		_spec.AddField(vendor.FieldTotalAmountPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorUpdateOne is the builder for updating a single Vendor entity.
type VendorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorMutation
}

// SetName sets the "name" field.
func (_u *VendorUpdateOne) SetName(v string) *VendorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableName(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *VendorUpdateOne) SetAccountNumber(v string) *VendorUpdateOne {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableAccountNumber(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *VendorUpdateOne) ClearAccountNumber() *VendorUpdateOne {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetItemsSupplied sets the "items_supplied" field.
func (_u *VendorUpdateOne) SetItemsSupplied(v string) *VendorUpdateOne {
	_u.mutation.SetItemsSupplied(v)
	return _u
}

// SetNillableItemsSupplied sets the "items_supplied" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableItemsSupplied(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetItemsSupplied(*v)
	}
	return _u
}

// ClearItemsSupplied clears the value of the "items_supplied" field.
func (_u *VendorUpdateOne) ClearItemsSupplied() *VendorUpdateOne {
	_u.mutation.ClearItemsSupplied()
	return _u
}

// SetCategory sets the "category" field.
func (_u *VendorUpdateOne) SetCategory(v string) *VendorUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableCategory(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *VendorUpdateOne) ClearCategory() *VendorUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetAddressLine1 sets the "address_line_1" field.
func (_u *VendorUpdateOne) SetAddressLine1(v string) *VendorUpdateOne {
	_u.mutation.SetAddressLine1(v)
	return _u
}

// SetNillableAddressLine1 sets the "address_line_1" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableAddressLine1(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetAddressLine1(*v)
	}
	return _u
}

// ClearAddressLine1 clears the value of the "address_line_1" field.
func (_u *VendorUpdateOne) ClearAddressLine1() *VendorUpdateOne {
	_u.mutation.ClearAddressLine1()
	return _u
}

// SetAddressLine2 sets the "address_line_2" field.
func (_u *VendorUpdateOne) SetAddressLine2(v string) *VendorUpdateOne {
	_u.mutation.SetAddressLine2(v)
	return _u
}

// SetNillableAddressLine2 sets the "address_line_2" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableAddressLine2(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetAddressLine2(*v)
	}
	return _u
}

// ClearAddressLine2 clears the value of the "address_line_2" field.
func (_u *VendorUpdateOne) ClearAddressLine2() *VendorUpdateOne {
	_u.mutation.ClearAddressLine2()
	return _u
}

// SetCity sets the "city" field.
func (_u *VendorUpdateOne) SetCity(v string) *VendorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableCity(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *VendorUpdateOne) ClearCity() *VendorUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *VendorUpdateOne) SetState(v string) *VendorUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableState(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *VendorUpdateOne) ClearState() *VendorUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *VendorUpdateOne) SetZipCode(v string) *VendorUpdateOne {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableZipCode(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// ClearZipCode clears the value of the "zip_code" field.
func (_u *VendorUpdateOne) ClearZipCode() *VendorUpdateOne {
	_u.mutation.ClearZipCode()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *VendorUpdateOne) SetContactEmail(v string) *VendorUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableContactEmail(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *VendorUpdateOne) ClearContactEmail() *VendorUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *VendorUpdateOne) SetContactPhone(v string) *VendorUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableContactPhone(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *VendorUpdateOne) ClearContactPhone() *VendorUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetBankAccountNumber sets the "bank_account_number" field.
func (_u *VendorUpdateOne) SetBankAccountNumber(v string) *VendorUpdateOne {
	_u.mutation.SetBankAccountNumber(v)
	return _u
}

// SetNillableBankAccountNumber sets the "bank_account_number" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableBankAccountNumber(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetBankAccountNumber(*v)
	}
	return _u
}

// ClearBankAccountNumber clears the value of the "bank_account_number" field.
func (_u *VendorUpdateOne) ClearBankAccountNumber() *VendorUpdateOne {
	_u.mutation.ClearBankAccountNumber()
	return _u
}

// SetRoutingNumber sets the "routing_number" field.
func (_u *VendorUpdateOne) SetRoutingNumber(v string) *VendorUpdateOne {
	_u.mutation.SetRoutingNumber(v)
	return _u
}

// SetNillableRoutingNumber sets the "routing_number" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableRoutingNumber(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetRoutingNumber(*v)
	}
	return _u
}

// ClearRoutingNumber clears the value of the "routing_number" field.
func (_u *VendorUpdateOne) ClearRoutingNumber() *VendorUpdateOne {
	_u.mutation.ClearRoutingNumber()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *VendorUpdateOne) SetBankName(v string) *VendorUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableBankName(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *VendorUpdateOne) ClearBankName() *VendorUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetAccountPayee sets the "account_payee" field.
func (_u *VendorUpdateOne) SetAccountPayee(v string) *VendorUpdateOne {
	_u.mutation.SetAccountPayee(v)
	return _u
}

// SetNillableAccountPayee sets the "account_payee" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableAccountPayee(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetAccountPayee(*v)
	}
	return _u
}

// ClearAccountPayee clears the value of the "account_payee" field.
func (_u *VendorUpdateOne) ClearAccountPayee() *VendorUpdateOne {
	_u.mutation.ClearAccountPayee()
	return _u
}

// SetTotalAmountPurchased sets the "total_amount_purchased" field.
func (_u *VendorUpdateOne) SetTotalAmountPurchased(v float64) *VendorUpdateOne {
	_u.mutation.ResetTotalAmountPurchased()
	_u.mutation.SetTotalAmountPurchased(v)
	return _u
}

// SetNillableTotalAmountPurchased sets the "total_amount_purchased" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableTotalAmountPurchased(v *float64) *VendorUpdateOne {
	if v != nil {
		_u.SetTotalAmountPurchased(*v)
	}
	return _u
}

// AddTotalAmountPurchased adds value to the "total_amount_purchased" field.
func (_u *VendorUpdateOne) AddTotalAmountPurchased(v float64) *VendorUpdateOne {
	_u.mutation.AddTotalAmountPurchased(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorUpdateOne) SetCreatedAt(v time.Time) *VendorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableCreatedAt(v *time.Time) *VendorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorUpdateOne) SetUpdatedAt(v time.Time) *VendorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *VendorUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *VendorUpdateOne) AddInvoices(v ...*Invoice) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdateOne) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *VendorUpdateOne) ClearInvoices() *VendorUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *VendorUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *VendorUpdateOne) RemoveInvoices(v ...*Invoice) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdateOne) Where(ps ...predicate.Vendor) *VendorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorUpdateOne) Select(field string, fields ...string) *VendorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vendor entity.
func (_u *VendorUpdateOne) Save(ctx context.Context) (*Vendor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdateOne) SaveX(ctx context.Context) *Vendor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VendorUpdateOne) sqlSave(ctx context.Context) (_node *Vendor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vendor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendor.FieldID)
		for _, f := range fields {
			if !vendor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(vendor.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(vendor.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsSupplied(); ok {
		_spec.SetField(vendor.FieldItemsSupplied, field.TypeString, value)
	}
	if _u.mutation.ItemsSuppliedCleared() {
		_spec.ClearField(vendor.FieldItemsSupplied, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(vendor.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(vendor.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.AddressLine1(); ok {
		_spec.SetField(vendor.FieldAddressLine1, field.TypeString, value)
	}
	if _u.mutation.AddressLine1Cleared() {
		_spec.ClearField(vendor.FieldAddressLine1, field.TypeString)
	}
	if value, ok := _u.mutation.AddressLine2(); ok {
		_spec.SetField(vendor.FieldAddressLine2, field.TypeString, value)
	}
	if _u.mutation.AddressLine2Cleared() {
		_spec.ClearField(vendor.FieldAddressLine2, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(vendor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(vendor.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(vendor.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(vendor.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(vendor.FieldZipCode, field.TypeString, value)
	}
	if _u.mutation.ZipCodeCleared() {
		_spec.ClearField(vendor.FieldZipCode, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(vendor.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(vendor.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(vendor.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(vendor.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccountNumber(); ok {
		_spec.SetField(vendor.FieldBankAccountNumber, field.TypeString, value)
	}
	if _u.mutation.BankAccountNumberCleared() {
		_spec.ClearField(vendor.FieldBankAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.RoutingNumber(); ok {
		_spec.SetField(vendor.FieldRoutingNumber, field.TypeString, value)
	}
	if _u.mutation.RoutingNumberCleared() {
		_spec.ClearField(vendor.FieldRoutingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(vendor.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(vendor.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.AccountPayee(); ok {
		_spec.SetField(vendor.FieldAccountPayee, field.TypeString, value)
	}
	if _u.mutation.AccountPayeeCleared() {
		_spec.ClearField(vendor.FieldAccountPayee, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmountPurchased(); ok {
		_spec.SetField(vendor.FieldTotalAmountPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmountPurchased(); ok {
		_spec.AddField(vendor.FieldTotalAmountPurchased, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vendor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
