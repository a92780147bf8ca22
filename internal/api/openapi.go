package api

import (
	"fmt"

	"github.com/JaimeStill/floorplan/internal/config"
	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/pkg/openapi"
)

// Spec builds the OpenAPI document describing the API module.
func Spec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	spec.Components.AddSchemas(schemas())

	spec.AddPaths(formPaths())
	spec.AddPaths(planPaths())
	spec.AddPaths(referencePaths())
	spec.AddPaths(exportPaths())

	return spec
}

func specJSON(cfg *config.Config) ([]byte, error) {
	data, err := openapi.MarshalJSON(Spec(cfg))
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}

var indexParam = openapi.PathParam("index", "integer", "Zero-based plan index")

func str(desc string) *openapi.Schema {
	return &openapi.Schema{Type: "string", Description: desc}
}

func integer(desc string) *openapi.Schema {
	return &openapi.Schema{Type: "integer", Description: desc}
}

func stringList(desc string) *openapi.Schema {
	return &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}, Description: desc}
}

func object(props map[string]*openapi.Schema, required ...string) *openapi.Schema {
	return &openapi.Schema{Type: "object", Properties: props, Required: required}
}

func schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Draft": object(map[string]*openapi.Schema{
			"length":                 integer("Total length in feet").AtLeast(housespec.MinDimension),
			"width":                  integer("Total width in feet").AtLeast(housespec.MinDimension),
			"floors":                 integer("Number of floors").Between(1, housespec.MaxFloors),
			"bedrooms":               integer("Bedroom count"),
			"bathrooms":              integer("Bathroom count"),
			"rooms":                  stringList("Essential and optional rooms"),
			"garage":                 str("None, 1-Car, 2-Car, or 3-Car"),
			"outdoor":                stringList("Outdoor spaces"),
			"style":                  str("Architectural style, or Custom"),
			"custom_style":           str("Free-text style when style is Custom"),
			"layout":                 str("Layout preference"),
			"accessibility":          {Type: "boolean", Description: "Include accessibility features"},
			"accessibility_features": stringList("Accessibility features"),
			"features":               str("Comma-separated additional features"),
			"special_instructions":   str("Free-text instructions"),
			"render_style":           str("Rendering style"),
			"furniture_detail":       integer("Furniture detail level").Between(0, housespec.MaxFurniture),
			"color_scheme":           str("Color scheme"),
			"resolution":             str("Standard, High, or Ultra High"),
		}),
		"FormOptions": object(map[string]*openapi.Schema{
			"essential_rooms":        stringList(""),
			"optional_rooms":         stringList(""),
			"garages":                stringList(""),
			"outdoor_spaces":         stringList(""),
			"styles":                 stringList(""),
			"layouts":                stringList(""),
			"accessibility_features": stringList(""),
			"render_styles":          stringList(""),
			"color_schemes":          stringList(""),
			"resolutions":            stringList(""),
			"min_dimension":          integer("Minimum length and width in feet"),
			"max_floors":             integer(""),
			"max_furniture_detail":   integer(""),
			"defaults":               openapi.SchemaRef("Draft"),
		}),
		"Prompt": object(map[string]*openapi.Schema{
			"text":  str("Prompt sent to the image provider"),
			"rooms": stringList("Ordered room and feature list"),
		}),
		"Preview": object(map[string]*openapi.Schema{
			"draft":  openapi.SchemaRef("Draft"),
			"prompt": openapi.SchemaRef("Prompt"),
		}),
		"Summary": object(map[string]*openapi.Schema{
			"dimensions":   str("e.g. 50' x 30'"),
			"floors":       integer(""),
			"bedrooms":     integer(""),
			"bathrooms":    integer(""),
			"style":        str(""),
			"render_style": str(""),
		}),
		"Plan": object(map[string]*openapi.Schema{
			"id":           str("Record identifier"),
			"index":        integer("Zero-based position"),
			"number":       integer("One-based display number"),
			"timestamp":    str("Creation time, YYYY-MM-DD HH:MM:SS"),
			"summary":      openapi.SchemaRef("Summary"),
			"features":     stringList("Room and feature list"),
			"filename":     str("Download filename"),
			"content_type": str("Image media type"),
			"size":         str("Human-readable image size"),
		}),
		"PlanPage": object(map[string]*openapi.Schema{
			"data":        openapi.ArrayOf("Plan"),
			"total":       integer(""),
			"page":        integer(""),
			"page_size":   integer(""),
			"total_pages": integer(""),
		}),
		"Generation": object(map[string]*openapi.Schema{
			"plan":   openapi.SchemaRef("Plan"),
			"prompt": openapi.SchemaRef("Prompt"),
		}),
		"Pending": object(map[string]*openapi.Schema{
			"token":  str("Confirmation token"),
			"action": {Type: "string", Enum: []any{"delete", "clear_all"}},
			"index":  integer("Target index, -1 for clear_all"),
		}),
		"TokenRequest": object(map[string]*openapi.Schema{
			"token": str("Confirmation token"),
		}, "token"),
		"Outcome": object(map[string]*openapi.Schema{
			"action":    str(""),
			"index":     integer(""),
			"remaining": integer("Plans left in the session"),
		}),
		"Export": object(map[string]*openapi.Schema{
			"key":  str("Blob storage key"),
			"size": str("Human-readable size"),
		}),
		"City": object(map[string]*openapi.Schema{
			"name":    str(""),
			"default": {Type: "boolean"},
		}),
		"CityInfo": object(map[string]*openapi.Schema{
			"requested": str("City named in the request"),
			"city":      str("City whose data is returned"),
			"fallback":  {Type: "boolean", Description: "Set when the default city was substituted"},
			"materials": {Type: "array", Items: object(map[string]*openapi.Schema{
				"item": str(""), "cost": str(""), "contact": str(""),
			})},
			"builders": {Type: "array", Items: object(map[string]*openapi.Schema{
				"name": str(""), "budget": str(""), "contact": str(""),
			})},
			"solar_vendors": {Type: "array", Items: object(map[string]*openapi.Schema{
				"company": str(""), "cost": str(""), "contact": str(""),
			})},
		}),
		"Timeline": object(map[string]*openapi.Schema{
			"phases": {Type: "array", Items: object(map[string]*openapi.Schema{
				"name": str(""), "min_weeks": integer(""), "max_weeks": integer(""),
			})},
			"min_weeks": integer("Total minimum duration"),
			"max_weeks": integer("Total maximum duration"),
		}),
		"Checklist": object(map[string]*openapi.Schema{
			"category": {Type: "string", Enum: []any{"house", "commercial", "process"}},
			"items":    stringList(""),
		}),
	}
}

func formPaths() map[string]*openapi.PathItem {
	return map[string]*openapi.PathItem{
		"/form/options": {
			Get: &openapi.Operation{
				Summary: "Form vocabularies and defaults",
				Tags:    []string{"Form"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Form options", "FormOptions"),
				},
			},
		},
		"/form/preview": {
			Post: &openapi.Operation{
				Summary:     "Build the prompt for a draft without generating",
				Tags:        []string{"Form"},
				RequestBody: openapi.RequestBodyJSON("Draft", false),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Prompt preview", "Preview"),
					400: openapi.ResponseRef("BadRequest"),
				},
			},
		},
	}
}

func planPaths() map[string]*openapi.PathItem {
	tags := []string{"Plans"}
	return map[string]*openapi.PathItem{
		"/plans": {
			Get: &openapi.Operation{
				Summary: "List the session's plans",
				Tags:    tags,
				Parameters: []*openapi.Parameter{
					openapi.QueryParam("page", "integer", "Page number", false),
					openapi.QueryParam("page_size", "integer", "Results per page", false),
					openapi.QueryParam("search", "string", "Match style, render style, or features", false),
					openapi.QueryParam("sort", "string", "index or -index", false),
				},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Plans", "PlanPage"),
				},
			},
			Post: &openapi.Operation{
				Summary:     "Generate a plan from a draft",
				Tags:        tags,
				RequestBody: openapi.RequestBodyJSON("Draft", false),
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Generated plan", "Generation"),
					400: openapi.ResponseRef("BadRequest"),
					502: openapi.ResponseRef("BadGateway"),
				},
			},
		},
		"/plans/session": {
			Delete: &openapi.Operation{
				Summary:   "End the session and discard its plans",
				Tags:      tags,
				Responses: map[int]*openapi.Response{204: {Description: "Session ended"}},
			},
		},
		"/plans/{index}": {
			Get: &openapi.Operation{
				Summary:    "Find a plan",
				Tags:       tags,
				Parameters: []*openapi.Parameter{indexParam},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Plan", "Plan"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
		"/plans/{index}/image": {
			Get: &openapi.Operation{
				Summary:    "Download a plan image",
				Tags:       tags,
				Parameters: []*openapi.Parameter{indexParam},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseBinary("Plan image", "image/*"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
		"/plans/{index}/spec": {
			Get: &openapi.Operation{
				Summary:    "Form values that produced a plan",
				Tags:       tags,
				Parameters: []*openapi.Parameter{indexParam},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Draft", "Draft"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
		"/plans/{index}/regenerate": {
			Post: &openapi.Operation{
				Summary:     "Render a plan's input again, optionally with edits",
				Tags:        tags,
				Parameters:  []*openapi.Parameter{indexParam},
				RequestBody: openapi.RequestBodyJSON("Draft", false),
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Generated plan", "Generation"),
					400: openapi.ResponseRef("BadRequest"),
					404: openapi.ResponseRef("NotFound"),
					502: openapi.ResponseRef("BadGateway"),
				},
			},
		},
		"/plans/{index}/delete": {
			Post: &openapi.Operation{
				Summary:    "Request deletion of a plan",
				Tags:       tags,
				Parameters: []*openapi.Parameter{indexParam},
				Responses: map[int]*openapi.Response{
					202: openapi.ResponseJSON("Pending deletion", "Pending"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
		"/plans/{index}/export": {
			Post: &openapi.Operation{
				Summary:    "Upload a plan image to blob storage",
				Tags:       tags,
				Parameters: []*openapi.Parameter{indexParam},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Export", "Export"),
					404: openapi.ResponseRef("NotFound"),
					501: openapi.ResponseRef("NotImplemented"),
				},
			},
		},
		"/plans/clear": {
			Post: &openapi.Operation{
				Summary: "Request removal of every plan",
				Tags:    tags,
				Responses: map[int]*openapi.Response{
					202: openapi.ResponseJSON("Pending clear", "Pending"),
				},
			},
		},
		"/plans/pending": {
			Get: &openapi.Operation{
				Summary: "Outstanding pending action",
				Tags:    tags,
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Pending action", "Pending"),
					204: {Description: "Nothing pending"},
				},
			},
		},
		"/plans/pending/confirm": {
			Post: &openapi.Operation{
				Summary:     "Confirm the pending action",
				Tags:        tags,
				RequestBody: openapi.RequestBodyJSON("TokenRequest", true),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Outcome", "Outcome"),
					404: openapi.ResponseRef("NotFound"),
					409: openapi.ResponseRef("Conflict"),
				},
			},
		},
		"/plans/pending/cancel": {
			Post: &openapi.Operation{
				Summary:     "Cancel the pending action",
				Tags:        tags,
				RequestBody: openapi.RequestBodyJSON("TokenRequest", true),
				Responses: map[int]*openapi.Response{
					204: {Description: "Cancelled"},
					409: openapi.ResponseRef("Conflict"),
				},
			},
		},
	}
}

func referencePaths() map[string]*openapi.PathItem {
	tags := []string{"Reference"}
	return map[string]*openapi.PathItem{
		"/reference/cities": {
			Get: &openapi.Operation{
				Summary: "Supported cities",
				Tags:    tags,
				Responses: map[int]*openapi.Response{
					200: {Description: "Cities", Content: map[string]*openapi.MediaType{
						"application/json": {Schema: openapi.ArrayOf("City")},
					}},
				},
			},
		},
		"/reference/cities/{city}": {
			Get: &openapi.Operation{
				Summary:     "Materials, builders, and solar vendors for a city",
				Description: "Unknown cities resolve to the default city.",
				Tags:        tags,
				Parameters:  []*openapi.Parameter{openapi.PathParam("city", "string", "City name")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("City info", "CityInfo"),
				},
			},
		},
		"/reference/timeline": {
			Get: &openapi.Operation{
				Summary: "Construction timeline estimate",
				Tags:    tags,
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Timeline", "Timeline"),
				},
			},
		},
		"/reference/permits": {
			Get: &openapi.Operation{
				Summary: "Legal and permit checklist",
				Tags:    tags,
				Responses: map[int]*openapi.Response{
					200: {Description: "Checklists", Content: map[string]*openapi.MediaType{
						"application/json": {Schema: openapi.ArrayOf("Checklist")},
					}},
				},
			},
		},
	}
}

func exportPaths() map[string]*openapi.PathItem {
	key := openapi.PathParam("key", "string", "Export key returned by POST /plans/{index}/export")
	return map[string]*openapi.PathItem{
		"/exports/{key}": {
			Get: &openapi.Operation{
				Summary:    "Download an exported plan image",
				Tags:       []string{"Exports"},
				Parameters: []*openapi.Parameter{key},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseBinary("Plan image", "image/*"),
					404: openapi.ResponseRef("NotFound"),
					501: openapi.ResponseRef("NotImplemented"),
				},
			},
			Delete: &openapi.Operation{
				Summary:    "Delete an exported plan image",
				Tags:       []string{"Exports"},
				Parameters: []*openapi.Parameter{key},
				Responses: map[int]*openapi.Response{
					204: {Description: "Deleted"},
					404: openapi.ResponseRef("NotFound"),
					501: openapi.ResponseRef("NotImplemented"),
				},
			},
		},
	}
}
