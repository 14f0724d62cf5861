package html

import "fmt"

// RenderLayout wraps a page body in the shared document shell. The CSRF form
// script rides along so every POST form picks up the hidden token field.
func RenderLayout(title, body string) string {
	return fmt.Sprintf(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/assets/app.css"></head><body><header class="topbar"><a href="/shipments">shipbatch</a></header><main class="container">%s</main>%s</body></html>`, title, body, CSRFFormScript())
}
