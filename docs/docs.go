// Package docs holds the OpenAPI document for the HTTP API in the layout
// `swag init -g cmd/service/main.go` produces. Keep it in sync with the
// @Summary/@Router annotations on the segment handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "HTML form for uploading a video",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "segment"
                ],
                "summary": "Upload form",
                "responses": {
                    "200": {
                        "description": "HTML form",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/process-static-video": {
            "get": {
                "description": "Uploads the configured static video (input.mp4 by default) and returns a page with the clipped, resized video URL",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "segment"
                ],
                "summary": "Segment the static video",
                "responses": {
                    "200": {
                        "description": "HTML page with the transformation URL",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Static video not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Provider upload failed",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/upload-and-process": {
            "post": {
                "description": "Uploads the video to the media provider and returns a page with the clipped, resized video URL",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "segment"
                ],
                "summary": "Upload and segment a video",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Video to segment",
                        "name": "video",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "HTML page with the transformation URL",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "No video uploaded",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Provider upload failed",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Video Segmenter API",
	Description:      "Uploads videos to Cloudinary and returns clipped, resized delivery URLs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
