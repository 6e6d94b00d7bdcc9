package mail

import "html/template"

// itemRows renders the shared itemized table body.
const itemRowsHTML = `
{{- range .Items }}
        <tr>
          <td style="padding: 8px; border-bottom: 1px solid #eee;">{{ .Name }}</td>
          <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center;">{{ .Quantity }}</td>
          <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">${{ .UnitPrice }}</td>
          <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">${{ .LineTotal }}</td>
        </tr>
{{- end }}`

const operatorHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af;">New Order Received - LuxeCuffs</h2>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Order Details</h3>
    <p><strong>Order ID:</strong> {{ .OrderID }}</p>
    <p><strong>Order Date:</strong> {{ .OrderDate }}</p>
    <p><strong>Payment Status:</strong> {{ .PaymentStatus }}</p>
  </div>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Customer Information</h3>
    <p><strong>Name:</strong> {{ .CustomerName }}</p>
    <p><strong>Email:</strong> {{ .CustomerEmail }}</p>
    <p><strong>Phone:</strong> {{ .CustomerPhone }}</p>
  </div>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Delivery Address</h3>
    <p>{{ .ShippingStreet }}</p>
    <p>{{ .ShippingCity }}, {{ .ShippingState }} {{ .ShippingZip }}</p>
  </div>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Order Items</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="background-color: #e2e8f0;">
          <th style="padding: 10px; text-align: left;">Product</th>
          <th style="padding: 10px; text-align: center;">Quantity</th>
          <th style="padding: 10px; text-align: right;">Unit Price</th>
          <th style="padding: 10px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>` + itemRowsHTML + `
      </tbody>
    </table>
  </div>

  <div style="background-color: #1e40af; color: white; padding: 20px; border-radius: 8px;">
    <div style="display: flex; justify-content: space-between; margin-bottom: 10px;">
      <span>Subtotal:</span>
      <span>${{ .Subtotal }}</span>
    </div>
    <div style="display: flex; justify-content: space-between; margin-bottom: 10px;">
      <span>Shipping:</span>
      <span>${{ .Shipping }}</span>
    </div>
    <div style="display: flex; justify-content: space-between; margin-bottom: 10px;">
      <span>Tax:</span>
      <span>${{ .Tax }}</span>
    </div>
    <div style="display: flex; justify-content: space-between; font-size: 18px; font-weight: bold; border-top: 1px solid rgba(255,255,255,0.3); padding-top: 10px;">
      <span>Total:</span>
      <span>${{ .Total }}</span>
    </div>
  </div>
</div>`

const customerHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af;">Thank You for Your Order!</h2>

  <p>Dear {{ .CustomerFirstName }},</p>
  <p>Thank you for choosing LuxeCuffs. Your order has been received and is being processed.</p>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Order Summary</h3>
    <p><strong>Order ID:</strong> {{ .OrderID }}</p>
    <p><strong>Order Date:</strong> {{ .OrderDate }}</p>
    <p><strong>Payment Status:</strong> {{ .PaymentStatus }}</p>
  </div>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Delivery Address</h3>
    <p>{{ .ShippingStreet }}</p>
    <p>{{ .ShippingCity }}, {{ .ShippingState }} {{ .ShippingZip }}</p>
  </div>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Order Items</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="background-color: #e2e8f0;">
          <th style="padding: 10px; text-align: left;">Product</th>
          <th style="padding: 10px; text-align: center;">Quantity</th>
          <th style="padding: 10px; text-align: right;">Unit Price</th>
          <th style="padding: 10px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>` + itemRowsHTML + `
      </tbody>
    </table>
  </div>

  <div style="background-color: #1e40af; color: white; padding: 20px; border-radius: 8px;">
    <div style="display: flex; justify-content: space-between; font-size: 18px; font-weight: bold;">
      <span>Total Paid:</span>
      <span>${{ .Total }}</span>
    </div>
  </div>

  <p style="margin-top: 20px; color: #64748b;">
    We'll send you shipping confirmation once your order is on its way.
  </p>
</div>`

var (
	operatorTmpl = template.Must(template.New("operator").Parse(operatorHTML))
	customerTmpl = template.Must(template.New("customer").Parse(customerHTML))
)

// orderEmailData is the view model shared by both templates. All monetary
// fields are pre-formatted two-decimal strings.
type orderEmailData struct {
	OrderID           string
	OrderDate         string
	PaymentStatus     string
	CustomerName      string
	CustomerFirstName string
	CustomerEmail     string
	CustomerPhone     string
	ShippingStreet    string
	ShippingCity      string
	ShippingState     string
	ShippingZip       string
	Items             []itemRow
	Subtotal          string
	Shipping          string
	Tax               string
	Total             string
}

type itemRow struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}
