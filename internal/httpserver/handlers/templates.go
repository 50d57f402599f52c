package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"
)

//go:embed templates/*.tmpl
var tplFS embed.FS

// pageTemplates maps a page file name to its parsed layout+page set.
type pageTemplates map[string]*template.Template

var tplFuncs = template.FuncMap{
	"pct": func(f float64) float64 {
		if f < 0 {
			return 0
		}
		if f > 100 {
			return 100
		}
		return f
	},
}

func parseTemplates() pageTemplates {
	all, err := fs.Glob(tplFS, "templates/*.tmpl")
	if err != nil {
		log.Fatalf("handlers: glob templates failed: %v", err)
	}
	if len(all) == 0 {
		log.Fatalf("handlers: no templates found in embed FS")
	}
	out := make(pageTemplates)
	for _, f := range all {
		if path.Base(f) == "layout.tmpl" {
			continue
		}
		t := template.New("layout").Funcs(tplFuncs)
		if _, err := t.ParseFS(tplFS, "templates/layout.tmpl"); err != nil {
			log.Fatalf("handlers: parse layout.tmpl: %v", err)
		}
		if _, err := t.ParseFS(tplFS, f); err != nil {
			log.Fatalf("handlers: parse %s: %v", f, err)
		}
		out[path.Base(f)] = t
	}
	return out
}

func ServeCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write([]byte(`body{font-family:system-ui,Segoe UI,Roboto,Arial,sans-serif;margin:0;background:#f3f4f6;color:#111827}
a{color:#2563eb;text-decoration:none} a:hover{text-decoration:underline}
header{padding:12px 20px;border-bottom:1px solid #e5e7eb;background:#fff;display:flex;gap:18px;align-items:center}
header .brand{font-weight:700}
.container{max-width:1100px;margin:0 auto;padding:20px}
table{width:100%;border-collapse:collapse;background:#fff;border:1px solid #e5e7eb}
th,td{padding:10px;border-bottom:1px solid #e5e7eb} th{text-align:left;background:#f9fafb;font-size:12px;text-transform:uppercase;color:#6b7280}
.btn{display:inline-block;padding:8px 12px;border:1px solid #d1d5db;background:#fff;color:#111827;border-radius:6px;cursor:pointer}
.btn-primary{background:#2563eb;border-color:#2563eb;color:#fff} .btn-danger{background:#b91c1c;border-color:#b91c1c;color:#fff}
.btn[disabled]{opacity:.5;cursor:not-allowed}
input,select{padding:8px;background:#fff;color:#111827;border:1px solid #d1d5db;border-radius:6px}
.grid{display:grid;gap:16px} .cols-3{grid-template-columns:repeat(3,1fr)} .cols-5{grid-template-columns:repeat(5,1fr)} .cols-6{grid-template-columns:repeat(6,1fr)}
.card{border:1px solid #e5e7eb;border-radius:10px;padding:16px;background:#fff}
.error{background:#fef2f2;border:1px solid #fecaca;color:#b91c1c;padding:10px;border-radius:8px;margin:12px 0}
.notice{background:#eff6ff;border:1px solid #bfdbfe;color:#1d4ed8;padding:10px;border-radius:8px;margin:12px 0}
.badge{padding:2px 8px;border-radius:999px;font-size:12px;background:#f3f4f6}
.badge-damaged{background:#fee2e2;color:#b91c1c} .badge-approved{background:#dcfce7;color:#166534}
.bar{background:#e5e7eb;border-radius:4px;height:8px;overflow:hidden}.bar>span{display:block;height:100%;background:#2563eb}
.angle{padding:10px;border-radius:8px;text-align:center;border:1px solid #d1d5db;background:#fff}
.angle.active{background:#2563eb;color:#fff}.angle.done{background:#dcfce7;border-color:#16a34a}
.preview{width:160px;height:120px;object-fit:cover;border-radius:8px;border:1px solid #e5e7eb}
.small{color:#6b7280;font-size:13px} .mono{font-family:ui-monospace,Menlo,Consolas,monospace}
h1,h2,h3{margin:12px 0}`))
}
