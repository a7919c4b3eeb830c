package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlantz/pokedex-api/pkg/observability"
)

// mockStorage implements Storage with per-method function fields so each test
// wires only what it exercises.
type mockStorage struct {
	listPokemonFn       func(ctx context.Context) ([]*Pokemon, error)
	getPokemonFn        func(ctx context.Context, id int64) (*Pokemon, error)
	createPokemonFn     func(ctx context.Context, in *PokemonInput, imageURL string) (int64, error)
	updatePokemonFn     func(ctx context.Context, id int64, upd *PokemonUpdate) error
	deletePokemonFn     func(ctx context.Context, id int64) error
	listPokemonByTypeFn func(ctx context.Context, typeName string) ([]*PokemonSummary, error)
	listPokemonByMoveFn func(ctx context.Context, moveName string) ([]*PokemonSummary, error)

	listMovesFn  func(ctx context.Context) ([]*Move, error)
	getMoveFn    func(ctx context.Context, id int64) (*MoveDetail, error)
	createMoveFn func(ctx context.Context, in *MoveInput) (int64, error)
	updateMoveFn func(ctx context.Context, id int64, in *MoveInput) error
	deleteMoveFn func(ctx context.Context, id int64) error

	listTypesFn  func(ctx context.Context) ([]*Type, error)
	getTypeFn    func(ctx context.Context, id int64) (*TypeDetail, error)
	createTypeFn func(ctx context.Context, in *TypeInput) (int64, error)
	updateTypeFn func(ctx context.Context, id int64, in *TypeInput) error
	deleteTypeFn func(ctx context.Context, id int64) error

	listSpeciesFn  func(ctx context.Context) ([]*Species, error)
	getSpeciesFn   func(ctx context.Context, id int64) (*Species, error)
	createSpeciesFn func(ctx context.Context, name string) (int64, error)
	updateSpeciesFn func(ctx context.Context, id int64, name string) error
	deleteSpeciesFn func(ctx context.Context, id int64) error

	listNaturesFn  func(ctx context.Context) ([]*Nature, error)
	getNatureFn    func(ctx context.Context, id int64) (*Nature, error)
	createNatureFn func(ctx context.Context, in *NatureInput) (int64, error)
	updateNatureFn func(ctx context.Context, id int64, in *NatureInput) error
	deleteNatureFn func(ctx context.Context, id int64) error

	healthCheckFn func(ctx context.Context) error
}

func (m *mockStorage) ListPokemon(ctx context.Context) ([]*Pokemon, error) {
	return m.listPokemonFn(ctx)
}
func (m *mockStorage) GetPokemon(ctx context.Context, id int64) (*Pokemon, error) {
	return m.getPokemonFn(ctx, id)
}
func (m *mockStorage) CreatePokemon(ctx context.Context, in *PokemonInput, imageURL string) (int64, error) {
	return m.createPokemonFn(ctx, in, imageURL)
}
func (m *mockStorage) UpdatePokemon(ctx context.Context, id int64, upd *PokemonUpdate) error {
	return m.updatePokemonFn(ctx, id, upd)
}
func (m *mockStorage) DeletePokemon(ctx context.Context, id int64) error {
	return m.deletePokemonFn(ctx, id)
}
func (m *mockStorage) ListPokemonByType(ctx context.Context, typeName string) ([]*PokemonSummary, error) {
	return m.listPokemonByTypeFn(ctx, typeName)
}
func (m *mockStorage) ListPokemonByMove(ctx context.Context, moveName string) ([]*PokemonSummary, error) {
	return m.listPokemonByMoveFn(ctx, moveName)
}

func (m *mockStorage) ListMoves(ctx context.Context) ([]*Move, error) { return m.listMovesFn(ctx) }
func (m *mockStorage) GetMove(ctx context.Context, id int64) (*MoveDetail, error) {
	return m.getMoveFn(ctx, id)
}
func (m *mockStorage) CreateMove(ctx context.Context, in *MoveInput) (int64, error) {
	return m.createMoveFn(ctx, in)
}
func (m *mockStorage) UpdateMove(ctx context.Context, id int64, in *MoveInput) error {
	return m.updateMoveFn(ctx, id, in)
}
func (m *mockStorage) DeleteMove(ctx context.Context, id int64) error {
	return m.deleteMoveFn(ctx, id)
}

func (m *mockStorage) ListTypes(ctx context.Context) ([]*Type, error) { return m.listTypesFn(ctx) }
func (m *mockStorage) GetType(ctx context.Context, id int64) (*TypeDetail, error) {
	return m.getTypeFn(ctx, id)
}
func (m *mockStorage) CreateType(ctx context.Context, in *TypeInput) (int64, error) {
	return m.createTypeFn(ctx, in)
}
func (m *mockStorage) UpdateType(ctx context.Context, id int64, in *TypeInput) error {
	return m.updateTypeFn(ctx, id, in)
}
func (m *mockStorage) DeleteType(ctx context.Context, id int64) error {
	return m.deleteTypeFn(ctx, id)
}

func (m *mockStorage) ListSpecies(ctx context.Context) ([]*Species, error) {
	return m.listSpeciesFn(ctx)
}
func (m *mockStorage) GetSpecies(ctx context.Context, id int64) (*Species, error) {
	return m.getSpeciesFn(ctx, id)
}
func (m *mockStorage) CreateSpecies(ctx context.Context, name string) (int64, error) {
	return m.createSpeciesFn(ctx, name)
}
func (m *mockStorage) UpdateSpecies(ctx context.Context, id int64, name string) error {
	return m.updateSpeciesFn(ctx, id, name)
}
func (m *mockStorage) DeleteSpecies(ctx context.Context, id int64) error {
	return m.deleteSpeciesFn(ctx, id)
}

func (m *mockStorage) ListNatures(ctx context.Context) ([]*Nature, error) {
	return m.listNaturesFn(ctx)
}
func (m *mockStorage) GetNature(ctx context.Context, id int64) (*Nature, error) {
	return m.getNatureFn(ctx, id)
}
func (m *mockStorage) CreateNature(ctx context.Context, in *NatureInput) (int64, error) {
	return m.createNatureFn(ctx, in)
}
func (m *mockStorage) UpdateNature(ctx context.Context, id int64, in *NatureInput) error {
	return m.updateNatureFn(ctx, id, in)
}
func (m *mockStorage) DeleteNature(ctx context.Context, id int64) error {
	return m.deleteNatureFn(ctx, id)
}

func (m *mockStorage) HealthCheck(ctx context.Context) error {
	if m.healthCheckFn != nil {
		return m.healthCheckFn(ctx)
	}
	return nil
}

// mockImageStore records the last upload and returns a fixed URL.
type mockImageStore struct {
	uploadedName string
	uploadedType string
	uploadedSize int
	err          error
}

func (m *mockImageStore) Upload(ctx context.Context, filename string, content io.Reader, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	data, _ := io.ReadAll(content)
	m.uploadedName = filename
	m.uploadedType = contentType
	m.uploadedSize = len(data)
	return "https://cdn.example.com/images/" + filename, nil
}

func newTestServer(storage Storage, images ImageStore) *Server {
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	return NewServer(storage, images, logger, Options{})
}

func decodeError(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope["error"]
}

func TestListPokemon(t *testing.T) {
	t.Run("returns pokemon list", func(t *testing.T) {
		storage := &mockStorage{
			listPokemonFn: func(ctx context.Context) ([]*Pokemon, error) {
				return []*Pokemon{
					{
						ID: 25, Name: "Pikachu", Species: "Mouse Pokemon",
						Moves: []MoveRef{{ID: 7, Name: "Thunderbolt"}},
						Types: []TypeRef{{ID: 3, Name: "Electric", Color: "#F8D030"}},
						BaseStats: BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
					},
				}, nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result []Pokemon
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 1)
		assert.Equal(t, "Pikachu", result[0].Name)
		assert.Equal(t, "Mouse Pokemon", result[0].Species)
		assert.Equal(t, 90, result[0].Speed)

		// Key names on the wire match the aggregation contract.
		var raw []map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Contains(t, raw[0], "type")
		assert.Contains(t, raw[0], "moves")
		assert.Contains(t, raw[0], "special_attack")
		assert.NotContains(t, raw[0], "image_url")
	})

	t.Run("empty table yields empty array", func(t *testing.T) {
		storage := &mockStorage{
			listPokemonFn: func(ctx context.Context) ([]*Pokemon, error) { return nil, nil },
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("storage failure is opaque", func(t *testing.T) {
		storage := &mockStorage{
			listPokemonFn: func(ctx context.Context) ([]*Pokemon, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		msg := decodeError(t, w.Body)
		assert.Equal(t, "internal server error", msg)
		assert.NotContains(t, msg, "pq:")
	})
}

func TestGetPokemon(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		storage := &mockStorage{
			getPokemonFn: func(ctx context.Context, id int64) (*Pokemon, error) {
				assert.Equal(t, int64(25), id)
				return &Pokemon{ID: 25, Name: "Pikachu", Species: "Mouse Pokemon",
					Moves: []MoveRef{}, Types: []TypeRef{}}, nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon/25", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var p Pokemon
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, int64(25), p.ID)
	})

	t.Run("not found", func(t *testing.T) {
		storage := &mockStorage{
			getPokemonFn: func(ctx context.Context, id int64) (*Pokemon, error) {
				return nil, ErrNotFound
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon/999", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "pokemon not found", decodeError(t, w.Body))
	})

	t.Run("non-numeric id does not match", func(t *testing.T) {
		storage := &mockStorage{}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon/abc", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreatePokemon(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		var got *PokemonInput
		var gotURL string
		storage := &mockStorage{
			createPokemonFn: func(ctx context.Context, in *PokemonInput, imageURL string) (int64, error) {
				got, gotURL = in, imageURL
				return 10, nil
			},
		}
		server := newTestServer(storage, nil)

		body := `{
			"name": "Bulbasaur",
			"species_id": 1,
			"height": 0.7,
			"weight": 6.9,
			"stats": {"hp":45,"attack":49,"defense":49,"special_attack":65,"special_defense":65,"speed":45},
			"moves": [1,2],
			"type": [4]
		}`
		req := httptest.NewRequest("POST", "/pokemon", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, "Bulbasaur", got.Name)
		assert.Equal(t, []int64{1, 2}, got.Moves)
		assert.Equal(t, []int64{4}, got.Types)
		assert.Empty(t, gotURL)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Pokemon added successfully!", resp["message"])
		assert.EqualValues(t, 10, resp["id"])
	})

	t.Run("missing name", func(t *testing.T) {
		called := false
		storage := &mockStorage{
			createPokemonFn: func(ctx context.Context, in *PokemonInput, imageURL string) (int64, error) {
				called = true
				return 0, nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("POST", "/pokemon", bytes.NewBufferString(`{"species_id": 1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("missing species_id", func(t *testing.T) {
		storage := &mockStorage{}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("POST", "/pokemon", bytes.NewBufferString(`{"name": "Bulbasaur"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		storage := &mockStorage{}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("POST", "/pokemon", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("multipart with image", func(t *testing.T) {
		var gotURL string
		storage := &mockStorage{
			createPokemonFn: func(ctx context.Context, in *PokemonInput, imageURL string) (int64, error) {
				gotURL = imageURL
				return 10, nil
			},
		}
		images := &mockImageStore{}
		server := newTestServer(storage, images)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("pokemon", `{"name":"Bulbasaur","species_id":1}`))
		fw, err := mw.CreateFormFile("image", "bulbasaur.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake png bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/pokemon", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "bulbasaur.png", images.uploadedName)
		assert.Equal(t, len("fake png bytes"), images.uploadedSize)
		assert.Equal(t, "https://cdn.example.com/images/bulbasaur.png", gotURL)
	})

	t.Run("multipart without image", func(t *testing.T) {
		var gotURL string
		storage := &mockStorage{
			createPokemonFn: func(ctx context.Context, in *PokemonInput, imageURL string) (int64, error) {
				gotURL = imageURL
				return 10, nil
			},
		}
		server := newTestServer(storage, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("pokemon", `{"name":"Bulbasaur","species_id":1}`))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/pokemon", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, gotURL)
	})

	t.Run("multipart missing pokemon field", func(t *testing.T) {
		storage := &mockStorage{}
		server := newTestServer(storage, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "value"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/pokemon", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upload failure aborts creation", func(t *testing.T) {
		called := false
		storage := &mockStorage{
			createPokemonFn: func(ctx context.Context, in *PokemonInput, imageURL string) (int64, error) {
				called = true
				return 0, nil
			},
		}
		images := &mockImageStore{err: errors.New("s3 unavailable")}
		server := newTestServer(storage, images)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("pokemon", `{"name":"Bulbasaur","species_id":1}`))
		fw, err := mw.CreateFormFile("image", "bulbasaur.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake png bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/pokemon", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, called)
	})
}

func TestUpdatePokemon(t *testing.T) {
	t.Run("path id overrides body id", func(t *testing.T) {
		var gotID int64
		storage := &mockStorage{
			updatePokemonFn: func(ctx context.Context, id int64, upd *PokemonUpdate) error {
				gotID = id
				return nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("PUT", "/pokemon/25", bytes.NewBufferString(`{"id":99,"name":"Raichu"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(25), gotID)
	})

	t.Run("body id without path", func(t *testing.T) {
		var gotID int64
		storage := &mockStorage{
			updatePokemonFn: func(ctx context.Context, id int64, upd *PokemonUpdate) error {
				gotID = id
				return nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("PUT", "/pokemon", bytes.NewBufferString(`{"id":25,"name":"Raichu"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(25), gotID)
	})

	t.Run("missing id everywhere", func(t *testing.T) {
		called := false
		storage := &mockStorage{
			updatePokemonFn: func(ctx context.Context, id int64, upd *PokemonUpdate) error {
				called = true
				return nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("PUT", "/pokemon", bytes.NewBufferString(`{"name":"Raichu"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "id is required", decodeError(t, w.Body))
		assert.False(t, called)
	})

	t.Run("empty move list reaches storage as empty replacement", func(t *testing.T) {
		var gotUpd *PokemonUpdate
		storage := &mockStorage{
			updatePokemonFn: func(ctx context.Context, id int64, upd *PokemonUpdate) error {
				gotUpd = upd
				return nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("PUT", "/pokemon/25", bytes.NewBufferString(`{"moves":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotUpd.Moves)
		assert.Empty(t, *gotUpd.Moves)
		assert.Nil(t, gotUpd.Types)
		assert.Nil(t, gotUpd.Name)
	})

	t.Run("not found", func(t *testing.T) {
		storage := &mockStorage{
			updatePokemonFn: func(ctx context.Context, id int64, upd *PokemonUpdate) error {
				return ErrNotFound
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("PUT", "/pokemon/999", bytes.NewBufferString(`{"name":"Raichu"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePokemon(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		storage := &mockStorage{
			deletePokemonFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(25), id)
				return nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("DELETE", "/pokemon/25", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Pokemon deleted successfully!", resp["message"])
	})

	t.Run("not found", func(t *testing.T) {
		storage := &mockStorage{
			deletePokemonFn: func(ctx context.Context, id int64) error { return ErrNotFound },
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("DELETE", "/pokemon/999", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListPokemonByType(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		storage := &mockStorage{
			listPokemonByTypeFn: func(ctx context.Context, typeName string) ([]*PokemonSummary, error) {
				assert.Equal(t, "electric", typeName)
				return []*PokemonSummary{
					{ID: 25, Name: "Pikachu", Species: "Mouse Pokemon",
						Types: []TypeRef{{ID: 3, Name: "Electric", Color: "#F8D030"}}},
				}, nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon/types/electric", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var raw []map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		require.Len(t, raw, 1)
		assert.Contains(t, raw[0], "types")
		assert.NotContains(t, raw[0], "moves")
	})

	t.Run("no matches is 404", func(t *testing.T) {
		storage := &mockStorage{
			listPokemonByTypeFn: func(ctx context.Context, typeName string) ([]*PokemonSummary, error) {
				return nil, nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon/types/shadow", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "no pokemon found with type: shadow", decodeError(t, w.Body))
	})
}

func TestListPokemonByMove(t *testing.T) {
	t.Run("no matches is 404", func(t *testing.T) {
		storage := &mockStorage{
			listPokemonByMoveFn: func(ctx context.Context, moveName string) ([]*PokemonSummary, error) {
				return nil, nil
			},
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/pokemon/moves/splash", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "no pokemon found with move: splash", decodeError(t, w.Body))
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("liveness is static", func(t *testing.T) {
		server := newTestServer(&mockStorage{}, nil)

		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness checks storage", func(t *testing.T) {
		storage := &mockStorage{
			healthCheckFn: func(ctx context.Context) error { return errors.New("down") },
		}
		server := newTestServer(storage, nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
