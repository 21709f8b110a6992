package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
	"github.com/shashiranjanraj/kashvi-golang/internal/models"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

func TestParseAttributesEmpty(t *testing.T) {
	attrs, err := parseAttributes("")
	require.NoError(t, err)
	assert.Equal(t, models.ProductAttributes{}, attrs)
}

func TestParseAttributesNecklace(t *testing.T) {
	raw := `{"necklace":{"color":"gold","style":"traditional","weight":12.5,"weightUnit":"g","purity":"22K","chainLength":"18in","claspType":"lobster"}}`

	attrs, err := parseAttributes(raw)
	require.NoError(t, err)
	require.NotNil(t, attrs.Necklace)
	assert.Equal(t, "gold", attrs.Necklace.Color)
	assert.Equal(t, 12.5, attrs.Necklace.Weight)
	assert.Equal(t, "18in", attrs.Necklace.ChainLength)
	assert.Nil(t, attrs.ComboSet)
	assert.Nil(t, attrs.Earrings)
	assert.Nil(t, attrs.Bracelet)
}

func TestParseAttributesComboSet(t *testing.T) {
	raw := `{"comboSet":{"color":"rose-gold","pieceCount":3,"includes":["necklace","earrings","bracelet"]}}`

	attrs, err := parseAttributes(raw)
	require.NoError(t, err)
	require.NotNil(t, attrs.ComboSet)
	assert.Equal(t, 3, attrs.ComboSet.PieceCount)
	assert.Len(t, attrs.ComboSet.Includes, 3)
}

func TestParseAttributesInvalidJSON(t *testing.T) {
	_, err := parseAttributes(`{"necklace":`)
	assert.Error(t, err)
}

func TestValidateMergedAttributes(t *testing.T) {
	stored := &models.Product{
		Category: models.CategoryNecklace,
		Attributes: models.ProductAttributes{
			Necklace: &models.NecklaceAttributes{ChainLength: "18in"},
		},
	}
	earrings := models.ProductAttributes{
		Earrings: &models.EarringsAttributes{ClosureType: "push-back"},
	}

	t.Run("category change alone leaves a stale variant", func(t *testing.T) {
		assert.Error(t, validateMergedAttributes(stored, models.CategoryEarrings, nil))
	})

	t.Run("variant change alone disagrees with stored category", func(t *testing.T) {
		assert.Error(t, validateMergedAttributes(stored, "", &earrings))
	})

	t.Run("changing both consistently passes", func(t *testing.T) {
		assert.NoError(t, validateMergedAttributes(stored, models.CategoryEarrings, &earrings))
	})

	t.Run("clearing the variant with the category change passes", func(t *testing.T) {
		assert.NoError(t, validateMergedAttributes(stored, models.CategoryEarrings, &models.ProductAttributes{}))
	})

	t.Run("no change keeps a valid product valid", func(t *testing.T) {
		assert.NoError(t, validateMergedAttributes(stored, "", nil))
	})
}

func TestUpdateProductRejectsCategoryVariantMismatch(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("category change against stored variant", func(mt *mtest.T) {
		gin.SetMode(gin.TestMode)

		h := &Handlers{
			Store:  store.New(mt.Client, "kashvi"),
			Config: &config.Config{},
			Log:    zap.NewNop(),
		}
		router := gin.New()
		router.PUT("/admin/products/:id", h.UpdateProduct)

		stored := models.Product{
			ID:       primitive.NewObjectID(),
			Name:     "Kundan Choker",
			Category: models.CategoryNecklace,
			Attributes: models.ProductAttributes{
				Necklace: &models.NecklaceAttributes{ChainLength: "16in"},
			},
		}
		raw, err := bson.Marshal(stored)
		require.NoError(mt, err)
		var doc bson.D
		require.NoError(mt, bson.Unmarshal(raw, &doc))
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "kashvi.products", mtest.FirstBatch, doc))

		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		require.NoError(mt, form.WriteField("category", models.CategoryEarrings))
		require.NoError(mt, form.Close())

		req := httptest.NewRequest(http.MethodPut, "/admin/products/"+stored.ID.Hex(), body)
		req.Header.Set("Content-Type", form.FormDataContentType())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "does not match")
	})
}
