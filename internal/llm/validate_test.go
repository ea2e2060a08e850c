package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadSchemaAllowsMissingFields(t *testing.T) {
	schema := BuildPayloadJSONSchema()
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{}`)))
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"title":"t","sections":[{"sec_id":"1"}]}`)))
}

func TestPayloadSchemaRejectsWrongContainerTypes(t *testing.T) {
	schema := BuildPayloadJSONSchema()
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"sections":{"sec_id":"1"}}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"keywords":"not a list"}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"title":42}`)))
}

func TestValidateJSONAgainstSchemaRejectsMalformedData(t *testing.T) {
	require.Error(t, ValidateJSONAgainstSchema(BuildPayloadJSONSchema(), []byte(`{oops`)))
}
