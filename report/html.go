// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/gogame/benchplot/scaling"
	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"f2": func(v float64) string { return fmtFloat(v, 2) },
	"f3": func(v float64) string { return fmtFloat(v, 3) },
	"f0": func(v float64) string { return fmtFloat(v, 0) },
}).Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Scaling Results</title>
<style>
.scaling { border-collapse: collapse; }
.scaling th { text-align: left; border-bottom: 1px solid #666; padding: 0em 1em; }
.scaling td { text-align: right; padding: 0em 1em; }
.scaling td:first-child { text-align: left; }
</style>
</head>
<body>
<table class='scaling'>
<tr><th>tech<th>count<th>x<th>games<th>speedup<th>efficiency
{{- range .Rows}}
<tr><td>{{.Tech}}<td>{{.Count}}<td>{{.X}}<td>{{f0 .Games}}<td>{{f2 .Speedup}}<td>{{f3 .Efficiency}}
{{- end}}
</table>
{{- range .Images}}
<p><img src="{{.}}">
{{- end}}
</body>
</html>
`))

// WriteHTML writes series as an HTML page with one table row per run,
// followed by an image for each entry of images.
func WriteHTML(w io.Writer, series []*scaling.Series, images []string) error {
	var data struct {
		Rows   []row
		Images []string
	}
	for _, s := range series {
		data.Rows = append(data.Rows, rows(s)...)
	}
	data.Images = images
	return htmlTemplate.Execute(w, data)
}
