package openapi

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocumentHandler returns a gin handler serving the assembled document as
// JSON. The document is built once; the registry is frozen by the time a
// server starts.
func DocumentHandler(info Info) gin.HandlerFunc {
	doc := BuildDocument(info)
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}

// DocsHandler returns a gin handler rendering an interactive documentation
// page (Stoplight Elements) that reads the document from specURL.
func DocsHandler(title, specURL string) gin.HandlerFunc {
	tmpl := template.Must(template.New("docs").Parse(docsHTML))
	data := struct {
		Title   string
		SpecURL string
	}{Title: title, SpecURL: specURL}

	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		_ = tmpl.Execute(c.Writer, data)
	}
}

// Mount registers GET /openapi.json and GET /docs on the router.
func Mount(r gin.IRouter, info Info) {
	r.GET("/openapi.json", DocumentHandler(info))
	r.GET("/docs", DocsHandler(info.Title, "/openapi.json"))
}

const docsHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
  <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
</head>
<body>
  <elements-api
    apiDescriptionUrl="{{.SpecURL}}"
    router="hash"
    layout="sidebar"
  />
</body>
</html>`
