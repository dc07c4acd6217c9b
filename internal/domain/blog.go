package domain

// Blog is a blog post passed through as stored. Posts have no fixed schema;
// field names and BSON types vary between documents.
type Blog map[string]interface{}
