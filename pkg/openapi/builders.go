package openapi

const jsonMedia = "application/json"

// SchemaRef points at a schema in components.schemas.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ResponseRef points at a response in components.responses.
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// ArrayOf is an array of the named component schema.
func ArrayOf(name string) *Schema {
	return &Schema{Type: "array", Items: SchemaRef(name)}
}

func RequestBodyJSON(schemaName string, required bool) *RequestBody {
	return &RequestBody{
		Required: required,
		Content:  map[string]*MediaType{jsonMedia: {Schema: SchemaRef(schemaName)}},
	}
}

func ResponseJSON(description, schemaName string) *Response {
	return &Response{
		Description: description,
		Content:     map[string]*MediaType{jsonMedia: {Schema: SchemaRef(schemaName)}},
	}
}

// ResponseBinary is a download of the given media type.
func ResponseBinary(description, mediaType string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			mediaType: {Schema: &Schema{Type: "string", Format: "binary"}},
		},
	}
}

// PathParam is always required.
func PathParam(name, typ, description string) *Parameter {
	return param(name, "path", typ, description, true)
}

func QueryParam(name, typ, description string, required bool) *Parameter {
	return param(name, "query", typ, description, required)
}

func param(name, in, typ, description string, required bool) *Parameter {
	return &Parameter{
		Name:        name,
		In:          in,
		Required:    required,
		Description: description,
		Schema:      &Schema{Type: typ},
	}
}
