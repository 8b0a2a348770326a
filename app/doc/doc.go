package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

type documenter struct {
	environment string
}

func (d *documenter) serveSwaggerJSON(c *gin.Context) {
	originalJSON, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read Swagger doc"})
		return
	}

	var swaggerData map[string]interface{}
	if err := json.Unmarshal([]byte(originalJSON), &swaggerData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Swagger doc"})
		return
	}

	swaggerData["servers"] = getServersForEnvironment(d.environment)

	// Elements reads OpenAPI 3 components alongside the swagger 2 definitions
	components, _ := swaggerData["components"].(map[string]interface{})
	if components == nil {
		components = make(map[string]interface{})
		swaggerData["components"] = components
	}
	securitySchemes, _ := components["securitySchemes"].(map[string]interface{})
	if securitySchemes == nil {
		securitySchemes = make(map[string]interface{})
		components["securitySchemes"] = securitySchemes
	}
	securitySchemes["SessionToken"] = map[string]interface{}{
		"type":        "apiKey",
		"in":          "header",
		"name":        "X-Session-Token",
		"description": "Token returned when the wizard session was started",
	}
	securitySchemes["DraftToken"] = map[string]interface{}{
		"type":        "apiKey",
		"in":          "header",
		"name":        "X-Draft-Token",
		"description": "Token returned when the draft was saved",
	}

	modifiedJSON, err := json.Marshal(swaggerData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate modified Swagger doc"})
		return
	}

	c.Data(http.StatusOK, "application/json", modifiedJSON)
}

func getServersForEnvironment(environment string) []map[string]interface{} {
	servers := []map[string]interface{}{
		{
			"url":         "http://localhost:8080/api/v1",
			"description": "Local Development Server",
		},
	}

	if environment == "staging" || environment == "production" {
		servers = append(servers, map[string]interface{}{
			"url":         "https://staging.prognos.markets/api/v1",
			"description": "Staging Server",
		})
	}

	if environment == "production" {
		servers = append(servers, map[string]interface{}{
			"url":         "https://prognos.markets/api/v1",
			"description": "Production Server",
		})
	}

	return servers
}

func serveElements(c *gin.Context) {
	elementsHTML := `
<!DOCTYPE html>
<html>
<head>
    <title>Prognos API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api
        apiDescriptionUrl="/swagger/doc.json"
        router="hash"
        layout="sidebar"
        tryItCredentialsPolicy="include"
        tryItCorsProxy=""
        hideInternal="false"
    ></elements-api>
</body>
</html>`
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, elementsHTML)
}

// Init serves the swagger document and the Elements viewer. The server list
// depends on environment.
func Init(r *gin.Engine, environment string) {
	d := &documenter{environment: environment}

	r.GET("/swagger/doc.json", d.serveSwaggerJSON)
	r.GET("/docs/*any", serveElements)
}
