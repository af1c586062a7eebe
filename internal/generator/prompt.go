package generator

import "fmt"

// BuildInvoicePrompt returns the instruction payload for the completion
// provider: the user's free-text request embedded into a fixed template that
// pins the exact JSON schema the response must follow.
func BuildInvoicePrompt(userPrompt string) string {
	return fmt.Sprintf(`You are an expert invoice JSON generator. Your task is to generate a JSON object containing placeholder data for an invoice.
The user's request is: "%s"

You MUST follow this exact JSON structure and format. Do not add or remove fields.
EXAMPLE STRUCTURE:
{
  "title": "Invoice",
  "company_name": "Your Company LLC",
  "company_address": "123 Main St\nCity, State 12345",
  "bill_to_name": "Client Name",
  "bill_to_address": "456 Client Ave\nClient City, ST 54321",
  "invoice_number": "INV-001",
  "date": "YYYY-MM-DD",
  "due_date": "YYYY-MM-DD",
  "items": [
    {
      "description": "Service or Product Description",
      "quantity": 1,
      "unit_price": 100.00
    }
  ],
  "notes": "Thank you for your business.",
  "tax_rate": 8.5,
  "logo_url": null,
  "theme_color": "#3498db"
}

- Populate the fields with realistic data based on the user's request: "%s".
- For dates, use a format like YYYY-MM-DD.
- If the user's prompt mentions "tax", provide a number for `+"`tax_rate`"+`. Otherwise, use null.
- If the user's prompt mentions a "logo", provide a placeholder URL for `+"`logo_url`"+`. Otherwise, use null.
- Respond ONLY with the raw JSON object. Do not add explanations or markdown.`, userPrompt, userPrompt)
}
