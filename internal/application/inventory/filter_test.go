package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanavm/stok-api/internal/application/inventory"
	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

func filterFixture() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Tam Yağlı Süt 1L", Company: "Sütaş", Category: "Süt & Kahvaltılık", Barcode: "869012345678"},
		{ID: "p2", Name: "Çaykur Rize Turist Çayı 1kg", Company: "Çaykur", Category: "İçecek", Barcode: "869055544433"},
		{ID: "p3", Name: "Beypazarı Maden Suyu 6'lı", Company: "Beypazarı", Category: "İçecek", Barcode: "869099988877"},
		{ID: "p4", Name: "Osmancık Pirinç 2.5kg", Company: "Yayla", Category: "Bakliyat", Barcode: "869011122233"},
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// ── búsqueda por texto ────────────────────────────────────────────────────────

func TestFilter_SinCriteriosDevuelveTodo(t *testing.T) {
	got := inventory.Filter(filterFixture(), "", "")
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(got),
		"Sin término ni categoría la vista es la lista completa, en el mismo orden")
}

func TestFilter_TerminoCoincideEnNombreSinImportarMayusculas(t *testing.T) {
	got := inventory.Filter(filterFixture(), "süt", "")
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID, "\"süt\" debe encontrar \"Tam Yağlı Süt 1L\"")
}

func TestFilter_TerminoCoincideEnMarca(t *testing.T) {
	got := inventory.Filter(filterFixture(), "yayla", "")
	require.Len(t, got, 1)
	assert.Equal(t, "p4", got[0].ID, "la marca también participa en la búsqueda")
}

func TestFilter_BarcodePorPrefijo(t *testing.T) {
	got := inventory.Filter(filterFixture(), "8690", "")
	assert.Len(t, got, 4, "todos los barcodes de la fixture empiezan por 8690")

	got = inventory.Filter(filterFixture(), "8691", "")
	assert.Empty(t, got, "un prefijo que no aparece en ningún barcode no coincide")
}

func TestFilter_BarcodeSubstringInterior(t *testing.T) {
	got := inventory.Filter(filterFixture(), "99988", "")
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID, "el barcode coincide por substring, no solo por prefijo")
}

// ── categoría ─────────────────────────────────────────────────────────────────

func TestFilter_CategoriaExacta(t *testing.T) {
	got := inventory.Filter(filterFixture(), "", "İçecek")
	assert.Equal(t, []string{"p2", "p3"}, ids(got))
}

func TestFilter_CategoriaNoCoincidePorSubstring(t *testing.T) {
	got := inventory.Filter(filterFixture(), "", "İçe")
	assert.Empty(t, got, "la categoría compara por igualdad exacta, no por substring")
}

func TestFilter_TerminoYCategoriaSeCombinan(t *testing.T) {
	got := inventory.Filter(filterFixture(), "suyu", "İçecek")
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID, "ambos criterios deben cumplirse a la vez")
}

// ── propiedades ───────────────────────────────────────────────────────────────

func TestFilter_PreservaElOrdenDeEntrada(t *testing.T) {
	got := inventory.Filter(filterFixture(), "869", "")
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(got))
}

func TestFilter_NoMutaLaEntrada(t *testing.T) {
	in := filterFixture()
	_ = inventory.Filter(in, "süt", "İçecek")
	assert.Equal(t, filterFixture(), in, "Filter es una función pura sobre su entrada")
}

func TestFilter_Idempotente(t *testing.T) {
	once := inventory.Filter(filterFixture(), "çay", "")
	twice := inventory.Filter(once, "çay", "")
	assert.Equal(t, once, twice, "filtrar el resultado con el mismo criterio no cambia nada")
}
