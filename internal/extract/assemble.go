package extract

// Assemble runs every field cascade over the document and folds the results
// into the canonical record. It also returns the per-field sources so callers
// can log how each value was obtained. Assembly never fails; every cascade
// closes with a sentinel default.
func Assemble(d *Document) (Record, map[string]Source) {
	fields := []Field{
		extractVendorName(d),
		extractInvoiceNumber(d),
		extractInvoiceDate(d),
		extractAmount(d),
	}
	fields = append(fields, extractSecondaryFields(d)...)

	var rec Record
	sources := make(map[string]Source, len(fields))
	for _, f := range fields {
		sources[f.Name] = f.Source
		setRecordField(&rec, f)
	}
	return rec, sources
}

func setRecordField(rec *Record, f Field) {
	switch f.Name {
	case "vendor_name":
		rec.VendorName = f.Value
	case "invoice_number":
		rec.InvoiceNumber = f.Value
	case "invoice_date":
		rec.InvoiceDate = f.Value
	case "amount":
		rec.Amount = f.Value
	case "account_number":
		rec.AccountNumber = f.Value
	case "items_supplied":
		rec.ItemsSupplied = f.Value
	case "category":
		rec.Category = f.Value
	case "address_line_1":
		rec.AddressLine1 = f.Value
	case "address_line_2":
		rec.AddressLine2 = f.Value
	case "city":
		rec.City = f.Value
	case "state":
		rec.State = f.Value
	case "zip_code":
		rec.ZipCode = f.Value
	case "contact_email":
		rec.ContactEmail = f.Value
	case "contact_phone":
		rec.ContactPhone = f.Value
	case "bank_account_number":
		rec.BankAccountNumber = f.Value
	case "routing_number":
		rec.RoutingNumber = f.Value
	case "bank_name":
		rec.BankName = f.Value
	case "account_payee":
		rec.AccountPayee = f.Value
	}
}
