package httpadapter

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

type pageData struct {
	Error  string
	Result *domain.Evaluation
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"score": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Placement Predictor</title>
</head>
<body>
<h1>Placement Predictor</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/" enctype="multipart/form-data">
<p><label>Resume (PDF or DOCX) <input type="file" name="resume" accept=".pdf,.docx"></label></p>
<p><label>CGPA <input type="text" name="cgpa"></label></p>
<p><label>ATS score <input type="text" name="ats_score"></label></p>
<p><button type="submit">Predict</button></p>
</form>
{{with .Result}}
<section class="result">
<h2>{{.Prediction.Message}}</h2>
<p>CGPA: {{score .Grade}} ({{.GradeSource}})</p>
<p>ATS score: {{score .ATSScore}} ({{.ScoreSource}})</p>
{{if .Feedback}}<h3>Suggestions</h3>
<ul>{{range .Feedback}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>
{{end}}
</body>
</html>
`))

func renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("render_page_failed", "error", err)
	}
}
