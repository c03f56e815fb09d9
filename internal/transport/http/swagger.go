package transporthttp

import (
	"net/http"

	"mvp90terminal/docs"
)

const swaggerSpecPath = "/swagger/openapi.yaml"

var swaggerPage = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>MVP90 Terminal API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body style="margin:0">
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.addEventListener('load', function() {
      SwaggerUIBundle({ url: '` + swaggerSpecPath + `', dom_id: '#swagger-ui', persistAuthorization: true });
    });
  </script>
</body>
</html>`)

func serveSwaggerUI(w http.ResponseWriter, r *http.Request) {
	serveDoc(w, r, "text/html; charset=utf-8", swaggerPage)
}

func serveSwaggerYAML(w http.ResponseWriter, r *http.Request) {
	serveDoc(w, r, "application/yaml", docs.OpenAPISpec)
}

// serveDoc answers 404 when the embedded OpenAPI document is missing so the UI never
// points at an empty document.
func serveDoc(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	if len(docs.OpenAPISpec) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
