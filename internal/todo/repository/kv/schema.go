package kv

const tasksSchemaURL = "todos.schema.json"

// tasksSchema describes the todos slot. Older clients may write null for
// untouched form fields.
const tasksSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "user"],
    "properties": {
      "id":         { "type": "string" },
      "title":      { "type": "string" },
      "user":       { "type": ["string", "null"] },
      "deadline":   { "type": ["string", "null"] },
      "isPriority": { "enum": ["Y", "N", null] }
    }
  }
}`
