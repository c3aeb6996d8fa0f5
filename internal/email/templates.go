package email

import (
	"bytes"
	"html/template"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h2>Willkommen bei Wagenmarkt{{if .Name}}, {{.Name}}{{end}}!</h2>
<p>Your account is ready. You can browse listings right away and
publish your own car for sale once you are signed in.</p>
`))

func renderWelcome(name string) string {
	var buf bytes.Buffer
	_ = welcomeTmpl.Execute(&buf, struct{ Name string }{Name: name})
	return buf.String()
}
