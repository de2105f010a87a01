package views

import (
	"bytes"
	"html"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/okavangolabs/sundowner/subscribers"
)

// OpsDashboardData is the view model for the subscriber dashboard.
type OpsDashboardData struct {
	Subs    []subscribers.Subscriber
	Counts  map[string]int
	Status  string
	Query   string
	Message string
	CSRF    string
}

// ImageInfo is the ops listing projection of an uploaded image.
type ImageInfo struct {
	Filename string
	URL      string
	Width    int
	Height   int
	SizeKB   int64
	Uploaded string
}

// OpsLogin renders the ops key prompt.
func OpsLogin(sh Shell, showError bool, csrf string) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="ops-login"><h1>Ops</h1>`)
		if showError {
			b.WriteString(`<p class="form-error">Wrong key.</p>`)
		}
		b.WriteString(`<form method="post" action="/ops/login/">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(csrf) + `">`)
		b.WriteString(`<input type="password" name="key" placeholder="Ops key" autofocus>`)
		b.WriteString(`<button type="submit">Enter</button>`)
		b.WriteString(`</form></section>`)
	})
}

// OpsDashboard renders the subscriber table with filters and actions.
func OpsDashboard(sh Shell, data OpsDashboardData) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="ops"><header class="ops-header"><h1>Subscribers</h1>`)
		b.WriteString(`<nav class="ops-nav"><a href="/ops/images/">Images</a> · <a href="` + html.EscapeString(exportURL(data)) + `">Export CSV</a>`)
		b.WriteString(`</nav></header>`)
		if data.Message != "" {
			b.WriteString(`<p class="ops-message">` + html.EscapeString(data.Message) + `</p>`)
		}

		b.WriteString(`<ul class="status-counts">`)
		for _, status := range subscribers.Statuses {
			b.WriteString(`<li><span class="badge badge-` + status + `">` + status + `</span> ` +
				strconv.Itoa(data.Counts[status]) + `</li>`)
		}
		b.WriteString(`</ul>`)

		b.WriteString(`<form class="ops-filter" method="get" action="/ops/">`)
		b.WriteString(`<select name="status"><option value="">all statuses</option>`)
		for _, status := range subscribers.Statuses {
			sel := ""
			if status == data.Status {
				sel = ` selected`
			}
			b.WriteString(`<option value="` + status + `"` + sel + `>` + status + `</option>`)
		}
		b.WriteString(`</select>`)
		b.WriteString(`<input type="search" name="q" placeholder="email contains" value="` + html.EscapeString(data.Query) + `">`)
		b.WriteString(`<button type="submit">Filter</button></form>`)

		if len(data.Subs) == 0 {
			b.WriteString(`<p class="empty">No subscribers match.</p>`)
			writeOpsFooter(b, data.CSRF)
			b.WriteString(`</section>`)
			return
		}
		b.WriteString(`<table class="ops-table"><thead><tr>` +
			`<th>Email</th><th>Status</th><th>Source</th><th>Signed up</th><th></th>` +
			`</tr></thead><tbody>`)
		for _, sub := range data.Subs {
			id := strconv.FormatInt(sub.ID, 10)
			b.WriteString(`<tr>`)
			b.WriteString(`<td>` + html.EscapeString(sub.Email) + `</td>`)
			b.WriteString(`<td><span class="badge badge-` + html.EscapeString(sub.Status) + `">` + html.EscapeString(sub.Status) + `</span></td>`)
			b.WriteString(`<td>` + html.EscapeString(sub.Source) + `</td>`)
			b.WriteString(`<td>` + sub.CreatedAt.Format("2006-01-02 15:04") + `</td>`)
			b.WriteString(`<td class="row-actions">`)
			b.WriteString(`<form method="post" action="/ops/subscribers/` + id + `/status/">`)
			b.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(data.CSRF) + `">`)
			b.WriteString(`<select name="status">`)
			for _, status := range subscribers.Statuses {
				sel := ""
				if status == sub.Status {
					sel = ` selected`
				}
				b.WriteString(`<option value="` + status + `"` + sel + `>` + status + `</option>`)
			}
			b.WriteString(`</select><button type="submit">Set</button></form>`)
			b.WriteString(`<form method="post" action="/ops/subscribers/` + id + `/delete/" onsubmit="return confirm('Delete ` + html.EscapeString(sub.Email) + `?')">`)
			b.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(data.CSRF) + `">`)
			b.WriteString(`<button type="submit" class="danger">Delete</button></form>`)
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
		writeOpsFooter(b, data.CSRF)
		b.WriteString(`</section>`)
	})
}

func exportURL(data OpsDashboardData) string {
	q := url.Values{}
	if data.Status != "" {
		q.Set("status", data.Status)
	}
	if data.Query != "" {
		q.Set("q", data.Query)
	}
	u := "/ops/export.csv"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// OpsImages renders the uploaded-image manager.
func OpsImages(sh Shell, images []ImageInfo, csrf string) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="ops"><header class="ops-header"><h1>Images</h1>`)
		b.WriteString(`<nav class="ops-nav"><a href="/ops/">Subscribers</a></nav></header>`)
		b.WriteString(`<form class="ops-upload" method="post" action="/ops/images/upload/" enctype="multipart/form-data">`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(csrf) + `">`)
		b.WriteString(`<input type="file" name="image" accept="image/jpeg,image/png,image/webp" required>`)
		b.WriteString(`<button type="submit">Upload</button></form>`)
		if len(images) == 0 {
			b.WriteString(`<p class="empty">No uploads yet.</p></section>`)
			return
		}
		b.WriteString(`<ul class="image-grid">`)
		for _, img := range images {
			b.WriteString(`<li><img src="` + html.EscapeString(img.URL) + `" alt="" loading="lazy">`)
			b.WriteString(`<p><code>` + html.EscapeString(img.URL) + `</code></p>`)
			b.WriteString(`<p class="card-meta">` + strconv.Itoa(img.Width) + `×` + strconv.Itoa(img.Height) +
				` · ` + strconv.FormatInt(img.SizeKB, 10) + ` KB · ` + html.EscapeString(img.Uploaded) + `</p>`)
			b.WriteString(`<form method="post" action="/ops/images/` + url.PathEscape(img.Filename) + `/delete/" onsubmit="return confirm('Delete ` + html.EscapeString(img.Filename) + `?')">`)
			b.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(csrf) + `">`)
			b.WriteString(`<button type="submit" class="danger">Delete</button></form></li>`)
		}
		b.WriteString(`</ul></section>`)
	})
}

func writeOpsFooter(b *bytes.Buffer, csrf string) {
	b.WriteString(`<form class="ops-logout" method="post" action="/ops/logout/">`)
	b.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(csrf) + `">`)
	b.WriteString(`<button type="submit">Log out</button></form>`)
}
