// Package render produces the printable tax-invoice document and the
// currency formatting it uses. The layout is fixed: header, bill-to block,
// items table, totals, bank details and terms, sized for an A4 print.
package render

import (
	"html/template"
	"io"
	"time"

	"github.com/acrozela/billbook/internal/models"
)

const dateLayout = "2006-01-02"

// formatDate renders a stored calendar date as dd/mm/yyyy. Unparsable values
// pass through unchanged rather than blanking a printed field.
func formatDate(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"inr":  FormatINR,
	"date": formatDate,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tax Invoice #{{.Invoice.ID}}</title>
<style>
  body { font-family: sans-serif; color: #0f172a; margin: 0; }
  .page { width: 210mm; min-height: 297mm; margin: 0 auto; padding: 18mm; box-sizing: border-box; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1e293b; padding-bottom: 18px; margin-bottom: 18px; }
  .company h1 { margin: 0 0 6px; font-size: 22px; }
  .company p, .meta p { margin: 2px 0; font-size: 12px; color: #475569; }
  .meta { text-align: right; }
  .meta h2 { margin: 0; font-size: 20px; letter-spacing: 3px; text-transform: uppercase; }
  .meta .number { font-family: monospace; font-size: 16px; font-weight: bold; color: #0f172a; }
  .billto { display: flex; justify-content: space-between; background: #f8fafc; border: 1px solid #e2e8f0; border-radius: 6px; padding: 14px; margin-bottom: 20px; font-size: 12px; }
  .billto h3 { margin: 2px 0; font-size: 16px; }
  .label { text-transform: uppercase; font-size: 10px; color: #64748b; letter-spacing: 1px; }
  table.items { width: 100%; border-collapse: collapse; margin-bottom: 20px; font-size: 12px; }
  table.items th { background: #1e293b; color: #fff; text-align: left; padding: 8px; }
  table.items th.num, table.items td.num { text-align: right; }
  table.items td { border-bottom: 1px solid #e2e8f0; padding: 8px; }
  .totals { width: 260px; margin-left: auto; font-size: 13px; background: #f8fafc; border: 1px solid #e2e8f0; border-radius: 6px; padding: 12px; margin-bottom: 28px; }
  .totals .row { display: flex; justify-content: space-between; margin-bottom: 6px; }
  .totals .grand { font-size: 17px; font-weight: bold; border-top: 2px solid #e2e8f0; padding-top: 8px; }
  .footer { display: flex; justify-content: space-between; border-top: 1px solid #e2e8f0; padding-top: 18px; font-size: 12px; }
  .footer pre { font-family: inherit; white-space: pre-wrap; color: #475569; margin: 4px 0; }
  .sign { text-align: right; align-self: flex-end; }
  .sign .line { border-top: 1px solid #cbd5e1; padding-top: 6px; font-size: 10px; text-transform: uppercase; letter-spacing: 2px; color: #64748b; }
  @media print { .page { width: auto; padding: 0; } }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <div class="company">
      <h1>{{.Settings.Name}}</h1>
      <p>{{.Settings.Address}}</p>
      <p>GSTIN: {{.Settings.Gstin}}</p>
      <p>Email: {{.Settings.Email}}</p>
      <p>Phone: {{.Settings.Phone}}</p>
    </div>
    <div class="meta">
      <h2>Tax Invoice</h2>
      <p>Original for Recipient</p>
      <p class="label">Invoice No.</p>
      <p class="number">#{{.Invoice.ID}}</p>
      <p class="label">Date</p>
      <p>{{date .Invoice.Date}}</p>
    </div>
  </div>

  <div class="billto">
    <div>
      <p class="label">Billed To</p>
      <h3>{{.Invoice.ClientName}}</h3>
      {{if .Invoice.ClientAddress}}<p>{{.Invoice.ClientAddress}}</p>{{else}}<p>Address not provided</p>{{end}}
    </div>
    <div style="text-align: right">
      {{if .Invoice.ClientGstin}}
      <p class="label">Client GSTIN</p>
      <p class="number">{{.Invoice.ClientGstin}}</p>
      {{end}}
      <p class="label">Due Date</p>
      <p>{{date .Invoice.DueDate}}</p>
    </div>
  </div>

  <table class="items">
    <thead>
      <tr>
        <th>Product / Description</th>
        <th>Quality</th>
        <th class="num">Qty</th>
        <th class="num">Rate</th>
        <th class="num">Disc</th>
        <th class="num">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Invoice.Items}}
      <tr>
        <td>{{.Description}}</td>
        <td>{{if .Quality}}{{.Quality}}{{else}}-{{end}}</td>
        <td class="num">{{.Quantity}}</td>
        <td class="num">{{inr .Rate}}</td>
        <td class="num">{{if .Discount}}{{.Discount}}%{{else}}-{{end}}</td>
        <td class="num">{{inr .Total}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div class="row"><span>Subtotal</span><span>{{inr .Invoice.Subtotal}}</span></div>
    <div class="row"><span>GST ({{.Invoice.GstRate}}%)</span><span>{{inr .Invoice.TaxAmount}}</span></div>
    <div class="row grand"><span>Grand Total</span><span>{{inr .Invoice.Total}}</span></div>
    <p class="label" style="text-align: right">Amount inclusive of all taxes</p>
  </div>

  <div class="footer">
    <div>
      <p class="label">Bank Details</p>
      <pre>{{.Settings.BankDetails}}</pre>
      {{if .Settings.UpiID}}<p>UPI: {{.Settings.UpiID}}</p>{{end}}
      <p class="label">Terms &amp; Conditions</p>
      {{if .Invoice.Terms}}
      <pre>{{.Invoice.Terms}}</pre>
      {{else}}
      <p>1. Goods once sold will not be taken back.<br>
         2. Interest @18% p.a. will be charged if payment is delayed.<br>
         3. Subject to local jurisdiction.</p>
      {{end}}
      {{if .Invoice.Notes}}<pre>{{.Invoice.Notes}}</pre>{{end}}
    </div>
    <div class="sign">
      <p><strong>{{.Settings.Name}}</strong></p>
      <p class="line">Authorized Signatory</p>
    </div>
  </div>
</div>
</body>
</html>
`))

// invoiceData is the template input: a fully populated invoice plus the
// issuer identity.
type invoiceData struct {
	Invoice  *models.Invoice
	Settings models.CompanySettings
}

// Invoice writes the printable document for inv to w.
func Invoice(w io.Writer, inv *models.Invoice, settings models.CompanySettings) error {
	return invoiceTmpl.Execute(w, invoiceData{Invoice: inv, Settings: settings})
}
