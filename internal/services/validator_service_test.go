package services

import (
	"testing"

	"github.com/rxtech-lab/flowforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTemplate() models.Template {
	return models.Template{
		Key:          "erc20",
		Name:         "ERC-20 Token",
		Status:       models.TemplateStatusLive,
		ContractName: "StandardToken",
		Parameters: []models.ParameterSpec{
			{Name: "name", Label: "Token Name", Kind: models.ParameterKindText},
			{Name: "symbol", Label: "Symbol", Kind: models.ParameterKindText},
			{Name: "initialSupply", Label: "Initial Supply", Kind: models.ParameterKindInteger, ScaleDecimals: 18},
		},
	}
}

func TestValidatorService(t *testing.T) {
	service := NewValidatorService()
	schema := service.BuildSchema(tokenTemplate())

	t.Run("AcceptsValidInput", func(t *testing.T) {
		values, errs := service.Validate(schema, map[string]string{
			"name":          "My Token",
			"symbol":        "MTK",
			"initialSupply": "1000000",
		})
		require.Empty(t, errs)
		assert.Equal(t, "My Token", values["name"])
		assert.Equal(t, "1000000", values["initialSupply"])
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		values, errs := service.Validate(schema, map[string]string{
			"name":          "  My Token  ",
			"symbol":        "MTK",
			"initialSupply": "100",
		})
		require.Empty(t, errs)
		assert.Equal(t, "My Token", values["name"])
	})

	t.Run("EmptyFieldsRequired", func(t *testing.T) {
		values, errs := service.Validate(schema, map[string]string{})
		assert.Nil(t, values)
		assert.Equal(t, "Required", errs["name"])
		assert.Equal(t, "Required", errs["symbol"])
		assert.Equal(t, "Required", errs["initialSupply"])
	})

	t.Run("WhitespaceOnlyIsRequired", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"name":          "   ",
			"symbol":        "MTK",
			"initialSupply": "100",
		})
		assert.Equal(t, "Required", errs["name"])
	})

	t.Run("NonNumericSupply", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"name":          "My Token",
			"symbol":        "MTK",
			"initialSupply": "abc",
		})
		assert.Equal(t, "Must be a number", errs["initialSupply"])
	})

	t.Run("DecimalSupplyAccepted", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"name":          "My Token",
			"symbol":        "MTK",
			"initialSupply": "12.5",
		})
		assert.Empty(t, errs)
	})

	t.Run("MalformedDecimalRejected", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"name":          "My Token",
			"symbol":        "MTK",
			"initialSupply": "12.5.3",
		})
		assert.Equal(t, "Must be a number", errs["initialSupply"])
	})

	t.Run("AllFieldsValidatedIndependently", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"name":          "",
			"symbol":        "MTK",
			"initialSupply": "abc",
		})
		require.Len(t, errs, 2)
		assert.Equal(t, "Required", errs["name"])
		assert.Equal(t, "Must be a number", errs["initialSupply"])
	})
}

func TestValidatorServiceAddressFields(t *testing.T) {
	service := NewValidatorService()
	schema := service.BuildSchema(models.Template{
		Key: "vesting",
		Parameters: []models.ParameterSpec{
			{Name: "beneficiary", Label: "Beneficiary", Kind: models.ParameterKindAddress},
		},
	})

	t.Run("ValidAddress", func(t *testing.T) {
		values, errs := service.Validate(schema, map[string]string{
			"beneficiary": "0x1234567890123456789012345678901234567890",
		})
		require.Empty(t, errs)
		assert.Equal(t, "0x1234567890123456789012345678901234567890", values["beneficiary"])
	})

	t.Run("TooShort", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{"beneficiary": "0xABC"})
		assert.Equal(t, "Invalid address", errs["beneficiary"])
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"beneficiary": "0x123456789012345678901234567890123456789",
		})
		assert.Equal(t, "Invalid address", errs["beneficiary"])
	})

	t.Run("MissingPrefix", func(t *testing.T) {
		_, errs := service.Validate(schema, map[string]string{
			"beneficiary": "1234567890123456789012345678901234567890",
		})
		assert.Equal(t, "Invalid address", errs["beneficiary"])
	})
}
