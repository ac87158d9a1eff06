package report

import (
	"fmt"
	"html/template"
	"io"
)

// _htmlPage is the self-contained bench report. No external assets, so the
// file can be mailed around or dropped into a lab notebook as-is.
const _htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>push-pull report: {{.Label}}</title>
<style>
  body { font-family: sans-serif; margin: 2em; color: #222; }
  h1 { font-size: 1.3em; }
  .meta { color: #666; font-size: 0.85em; }
  table { border-collapse: collapse; margin-top: 1em; }
  th, td { border: 1px solid #bbb; padding: 0.3em 0.9em; text-align: right; }
  th { background: #f0f0f0; text-align: left; }
  .verdict { margin-top: 1.2em; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Label}}</h1>
<p class="meta">run {{.ID}} &middot; {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}} &middot; {{.Kind}}</p>

<table>
<tr><th>VCC</th><td>{{printf "%.2f" .Circuit.VCC}} V</td></tr>
<tr><th>RL</th><td>{{printf "%.2f" .Circuit.RL}} &Omega;</td></tr>
<tr><th>Uin pp</th><td>{{printf "%.2f" .Analysis.Input.UinPP}} V</td></tr>
<tr><th>Uout pp</th><td>{{printf "%.2f" .Analysis.Input.UoutPP}} V</td></tr>
<tr><th>VR2 dc</th><td>{{printf "%.2f" .Analysis.Input.VR2}} V</td></tr>
<tr><th>Vpeak</th><td>{{printf "%.2f" .Analysis.Vpeak}} V</td></tr>
<tr><th>Vrms</th><td>{{printf "%.3f" .Analysis.Vrms}} V</td></tr>
<tr><th>Ipeak</th><td>{{printf "%.1f" .Analysis.Ipeak.Milli}} mA</td></tr>
<tr><th>Iav</th><td>{{printf "%.1f" .Analysis.Iav.Milli}} mA</td></tr>
<tr><th>Ibias</th><td>{{printf "%.1f" .Analysis.Ibias.Milli}} mA</td></tr>
<tr><th>Idc</th><td>{{printf "%.1f" .Analysis.Idc.Milli}} mA</td></tr>
<tr><th>Pout</th><td>{{printf "%.1f" .Analysis.Pout.Milli}} mW</td></tr>
<tr><th>Pdc</th><td>{{printf "%.1f" .Analysis.Pdc.Milli}} mW</td></tr>
<tr><th>Pd each</th><td>{{printf "%.1f" .Analysis.PdEach.Milli}} mW</td></tr>
<tr><th>&eta;</th><td>{{printf "%.1f" (pct .Analysis.Eta)}} %</td></tr>
<tr><th>Av</th><td>{{printf "%.2f" .Analysis.Av}}</td></tr>
</table>

<p class="verdict">{{.Analysis.Advisory}}</p>
</body>
</html>
`

var htmlTpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(x float64) float64 { return x * 100 },
}).Parse(_htmlPage))

// HTMLFormatter renders reports as standalone HTML pages, one per call.
type HTMLFormatter struct {
	w io.Writer
}

// NewHTMLFormatter creates an HTML formatter writing to w.
func NewHTMLFormatter(w io.Writer) *HTMLFormatter {
	return &HTMLFormatter{w: w}
}

// Format executes the page template for one report.
func (f *HTMLFormatter) Format(r *Report) error {
	if err := htmlTpl.Execute(f.w, r); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}
