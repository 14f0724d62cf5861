package shipments

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"shipbatch/frontend/shared/html"
	"shipbatch/models"
)

// ShipmentsPage renders the batch entry screen: status banner, entry form
// (create or edit mode), the shipment table, and the batch actions.
func ShipmentsPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeBanner(&b, data)
		writeForm(&b, data)
		writeTable(&b, data.Shipments, data.EditID)
		writeBatchActions(&b, len(data.Shipments))
		_, err := io.WriteString(w, html.RenderLayout("Shipment Batch", b.String()))
		return err
	})
}

func writeBanner(b *strings.Builder, data PageData) {
	if data.Message == "" {
		return
	}
	class := "banner"
	if data.IsError {
		class = "banner banner-error"
	}
	b.WriteString(`<p class="` + class + `">` + templ.EscapeString(data.Message) + `</p>`)
}

func writeForm(b *strings.Builder, data PageData) {
	action := "/shipments"
	legend := "New shipment"
	submit := "Add shipment"
	if data.EditID != "" {
		action = "/shipments/" + templ.EscapeString(data.EditID) + "/update"
		legend = "Edit shipment"
		submit = "Save changes"
	}

	b.WriteString(`<form method="POST" action="` + action + `"><fieldset><legend>` + legend + `</legend>`)
	writeNumberField(b, "length", "Length (in)", data.Draft.Length)
	writeNumberField(b, "width", "Width (in)", data.Draft.Width)
	writeNumberField(b, "height", "Height (in)", data.Draft.Height)
	writeNumberField(b, "weight", "Weight (lb)", data.Draft.Weight)
	b.WriteString(`<label>Reference <input type="text" name="reference" value="` + templ.EscapeString(data.Draft.Reference) + `" placeholder="optional"></label>`)
	b.WriteString(`<button type="submit">` + submit + `</button>`)
	if data.EditID != "" {
		b.WriteString(` <a class="btn-link" href="/shipments">Cancel</a>`)
	}
	b.WriteString(`</fieldset></form>`)
}

func writeNumberField(b *strings.Builder, name, label, value string) {
	b.WriteString(`<label>` + label + ` <input type="number" step="any" min="0" name="` + name + `" value="` + templ.EscapeString(value) + `"></label>`)
}

func writeTable(b *strings.Builder, list []models.Shipment, editID string) {
	if len(list) == 0 {
		b.WriteString(`<p class="empty">No shipments in the batch yet.</p>`)
		return
	}
	b.WriteString(`<table><thead><tr><th>#</th><th>Dimensions</th><th>Weight</th><th>Reference</th><th></th></tr></thead><tbody>`)
	for i, s := range list {
		id := templ.EscapeString(s.ID)
		rowClass := ""
		if s.ID == editID {
			rowClass = ` class="editing"`
		}
		b.WriteString(`<tr` + rowClass + `><td>` + strconv.Itoa(i+1) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(s.Dims()) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(s.WeightLabel()) + `</td>`)
		b.WriteString(`<td>` + templ.EscapeString(s.Reference) + `</td>`)
		b.WriteString(`<td class="row-actions">`)
		b.WriteString(`<a href="/shipments?edit=` + id + `">Edit</a> `)
		b.WriteString(`<a href="/shipments/` + id + `/label.pdf">Label</a> `)
		b.WriteString(`<form method="POST" action="/shipments/` + id + `/delete"><button type="submit">Delete</button></form>`)
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func writeBatchActions(b *strings.Builder, count int) {
	if count == 0 {
		return
	}
	b.WriteString(`<div class="batch-actions"><span>` + strconv.Itoa(count) + ` shipment(s)</span> `)
	b.WriteString(`<a class="btn-link" href="/exports/shipments.csv">Export CSV</a> `)
	b.WriteString(`<form method="POST" action="/shipments/clear"><button type="submit">Clear all</button></form></div>`)
}
