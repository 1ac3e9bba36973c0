package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validate corre sobre los DTOs de request antes de que nada llegue
// a la capa de negocio.
var validate = validator.New()

// decodeValid parsea el struct y devuelve el primer error de
// validación en un mensaje entendible.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("field '%s' failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err
}

// parseObjectID valida el ObjectId del path antes de tocar el store,
// igual que hacía el viejo middleware checkId. Si es inválido escribe
// el 400 y devuelve false.
func parseObjectID(w http.ResponseWriter, r *http.Request, param string) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, param)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		respondFail(w, http.StatusBadRequest, fmt.Sprintf("Invalid ObjectId: '%s'", raw))
		return primitive.NilObjectID, false
	}
	return id, true
}
