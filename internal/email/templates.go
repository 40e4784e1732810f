package email

import "html/template"

const businessAlertTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px;">
    <h2 style="color: #dc3545;">🚗 New Booking Alert!</h2>
    <div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 15px 0;">
        <h3>Booking Details</h3>
        <p><strong>Booking ID:</strong> {{.BookingID}}</p>
        <p><strong>Service:</strong> {{.ServiceName}}</p>
        <p><strong>Price:</strong> {{.Price}}</p>
        <p><strong>Duration:</strong> {{.Duration}}</p>
    </div>
    <div style="background: #e8f4f8; padding: 15px; border-radius: 5px; margin: 15px 0;">
        <h3>Customer Information</h3>
        <p><strong>Name:</strong> {{.CustomerName}}</p>
        <p><strong>Phone:</strong> <a href="tel:{{.CustomerPhone}}">{{.CustomerPhone}}</a></p>
        <p><strong>Email:</strong> <a href="mailto:{{.CustomerEmail}}">{{.CustomerEmail}}</a></p>
        {{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
    </div>
    <div style="background: #fff3cd; padding: 15px; border-radius: 5px; text-align: center;">
        <h3 style="color: #856404;">⚠️ Contact customer within 1 hour!</h3>
        <a href="tel:{{.CustomerPhone}}" style="background: #28a745; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">📞 Call Now</a>
    </div>
</div>`

const customerConfirmationTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px;">
    <h2 style="color: #28a745;">✅ Booking Confirmed!</h2>
    <p>Dear {{.CustomerName}},</p>
    <p>Thank you for choosing {{.BusinessName}}!</p>
    <div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 15px 0;">
        <h3>Your Booking Details</h3>
        <p><strong>Booking ID:</strong> {{.BookingID}}</p>
        <p><strong>Service:</strong> {{.ServiceName}}</p>
        <p><strong>Price:</strong> {{.Price}}</p>
        <p><strong>Duration:</strong> {{.Duration}}</p>
    </div>
    <div style="background: #d4edda; padding: 15px; border-radius: 5px; margin: 15px 0;">
        <h3>What's Next?</h3>
        <p>✅ Our team will contact you within 1 hour</p>
        <p>✅ We'll schedule a convenient time for your service</p>
        <p>✅ Our professionals will arrive at your location</p>
        <p>✅ Payment is made after service completion</p>
    </div>
    <div style="background: #fff3cd; padding: 15px; border-radius: 5px; text-align: center;">
        <h3>Need Help?</h3>
        <p><strong>📞 {{.BusinessPhone}}</strong></p>
        {{if .BusinessHours}}<p>Available {{.BusinessHours}}</p>{{end}}
    </div>
</div>`

const smokeTestTemplate = `<h2>✅ Email Test Successful!</h2>
<p>Your email configuration is working.</p>
<p><strong>Test Time:</strong> {{.SentAt}}</p>
<p><strong>From:</strong> {{.BusinessName}}</p>`

var (
	businessAlert        = template.Must(template.New("business_alert").Parse(businessAlertTemplate))
	customerConfirmation = template.Must(template.New("customer_confirmation").Parse(customerConfirmationTemplate))
	smokeTest            = template.Must(template.New("smoke_test").Parse(smokeTestTemplate))
)

type bookingData struct {
	BookingID     string
	ServiceName   string
	Price         string
	Duration      string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Message       string
	BusinessName  string
	BusinessPhone string
	BusinessHours string
}

type smokeTestData struct {
	SentAt       string
	BusinessName string
}
