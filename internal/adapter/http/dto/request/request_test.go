package request

import (
	"encoding/json"
	"testing"

	"claimscope/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, register(v))
	return v
}

func decode(t *testing.T, body string, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out))
}

func TestZoneRequestValidation(t *testing.T) {
	v := newValidator(t)

	var ok ZoneRequest
	decode(t, `{"name":"Kitchen","type":"room","dimensions":{"length":"10","width":12,"height":8}}`, &ok)
	require.NoError(t, v.Struct(ok))
	in := ok.ToInput()
	assert.Equal(t, entities.ZoneTypeRoom, in.Type)
	assert.Equal(t, "12", in.Dimensions.Width.String())

	var badType ZoneRequest
	decode(t, `{"name":"Kitchen","type":"attic"}`, &badType)
	assert.Error(t, v.Struct(badType))

	var negative ZoneRequest
	decode(t, `{"name":"Kitchen","type":"room","dimensions":{"length":-1}}`, &negative)
	assert.Error(t, v.Struct(negative))

	var shortFootprint ZoneRequest
	decode(t, `{"name":"Nook","type":"custom","footprint":[[0,0],[1,0]]}`, &shortFootprint)
	assert.Error(t, v.Struct(shortFootprint))
}

func TestZonePatchRequest_ToUpdate(t *testing.T) {
	var r ZonePatchRequest
	decode(t, `{"status":"scoped","dimensions":{"length":30}}`, &r)
	require.NoError(t, newValidator(t).Struct(r))

	u := r.ToUpdate()
	require.NotNil(t, u.Status)
	assert.Equal(t, entities.ZoneStatusScoped, *u.Status)
	require.NotNil(t, u.Dimensions)
	assert.Equal(t, "30", u.Dimensions.Length.String())
	assert.Nil(t, u.Dimensions.Width)
	assert.Nil(t, u.Name)
}

func TestMissingWallRequestValidation(t *testing.T) {
	v := newValidator(t)

	var ok MissingWallRequest
	decode(t, `{"type":"doorway","width":3,"height":"7"}`, &ok)
	assert.NoError(t, v.Struct(ok))

	var zeroWidth MissingWallRequest
	decode(t, `{"type":"doorway","width":0,"height":7}`, &zeroWidth)
	assert.Error(t, v.Struct(zeroWidth))

	var badType MissingWallRequest
	decode(t, `{"type":"skylight","width":3,"height":7}`, &badType)
	assert.Error(t, v.Struct(badType))
}

func TestLineItemRequests(t *testing.T) {
	v := newValidator(t)

	var fromDim LineItemFromDimensionRequest
	decode(t, `{"code":"DRY-HANG","dimension_key":"wall_area","coverage_id":"cov-1"}`, &fromDim)
	require.NoError(t, v.Struct(fromDim))
	assert.Equal(t, entities.DimWallArea, fromDim.DimensionKey)
	assert.Equal(t, "cov-1", *fromDim.ToInput().CoverageID)

	var missingCode LineItemRequest
	decode(t, `{"quantity":1}`, &missingCode)
	assert.Error(t, v.Struct(missingCode))

	var badPatch LineItemPatchRequest
	decode(t, `{"quantity":0}`, &badPatch)
	assert.Error(t, v.Struct(badPatch))
}

func TestCoverageAndStatusValidation(t *testing.T) {
	v := newValidator(t)

	var cov CoverageRequest
	decode(t, `{"type":"dwelling","policy_limit":"250000","deductible":"1000"}`, &cov)
	assert.NoError(t, v.Struct(cov))

	var flood CoverageRequest
	decode(t, `{"type":"flood"}`, &flood)
	assert.Error(t, v.Struct(flood))

	var status UpdateStatusRequest
	decode(t, `{"status":"archived"}`, &status)
	assert.Error(t, v.Struct(status))
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())
}
