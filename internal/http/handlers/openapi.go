package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPISpec []byte

// OpenAPIPath is where the document is served; the docs page loads it from there.
const OpenAPIPath = "/v1/openapi.json"

const redocHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>Storefront API Docs</title>
    <meta name="description" content="Campus meal storefront: dish catalog, kiosk and cloud kitchen locations, scheduled pickup and delivery orders, and the nutrition plan generator." />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <style>
      body {
        margin: 0;
        padding: 0;
      }
      redoc {
        display: block;
        height: 100vh;
      }
    </style>
  </head>
  <body>
    <noscript>
      The interactive reference needs JavaScript. The raw document is at
      <a href="` + OpenAPIPath + `">` + OpenAPIPath + `</a>.
    </noscript>
    <redoc spec-url="` + OpenAPIPath + `" expand-responses="200" required-props-first="true" sort-props-alphabetically="false"></redoc>
    <script src="https://cdn.jsdelivr.net/npm/redoc@2.2.0/bundles/redoc.standalone.js"></script>
  </body>
</html>`

func (a *App) OpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

func (a *App) OpenAPIDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(redocHTML))
}
