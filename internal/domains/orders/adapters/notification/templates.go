package notification

import "html/template"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Order Confirmation</h2>
  <p>Dear {{.Name}},</p>
  <p>Your order has been <strong style="color: #16a34a;">confirmed</strong>!</p>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Order Details:</h3>
    <ul style="list-style: none; padding: 0;">
      <li><strong>Product:</strong> {{.Product}}</li>
      <li><strong>Quantity:</strong> {{.Quantity}}</li>
      <li><strong>Order ID:</strong> {{.ID}}</li>
      <li><strong>Date:</strong> {{.CreatedAt.Format "Jan 2, 2006"}}</li>
    </ul>
  </div>

  <p>We will contact you soon at <strong>{{.Phone}}</strong> for delivery arrangements.</p>
  <p>Thank you for choosing Elevate Mobility!</p>

  <hr style="margin: 30px 0;">
  <p style="color: #64748b; font-size: 14px;">
    Best regards,<br>
    Elevate Mobility Team
  </p>
</div>`))

var cancellationTmpl = template.Must(template.New("cancellation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626;">Order Cancelled</h2>
  <p>Dear {{.Name}},</p>
  <p>We regret to inform you that your order has been <strong style="color: #dc2626;">cancelled</strong>.</p>

  <div style="background: #fef2f2; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #dc2626;">
    <h3>Cancelled Order Details:</h3>
    <ul style="list-style: none; padding: 0;">
      <li><strong>Product:</strong> {{.Product}}</li>
      <li><strong>Quantity:</strong> {{.Quantity}}</li>
      <li><strong>Order ID:</strong> {{.ID}}</li>
      <li><strong>Date:</strong> {{.CreatedAt.Format "Jan 2, 2006"}}</li>
    </ul>
  </div>

  <p>If you have any questions or concerns, please contact us or reply to this email.</p>
  <p>We apologize for any inconvenience caused.</p>

  <hr style="margin: 30px 0;">
  <p style="color: #64748b; font-size: 14px;">
    Best regards,<br>
    Elevate Mobility Team
  </p>
</div>`))
