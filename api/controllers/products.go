package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/responses"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/validators"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/catalog"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
)

// ProductList serves the storefront catalog with optional filters.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		organic, err := validators.ParseQueryBool(r, "organic")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context(), catalog.ListProductsInput{
			Category: r.URL.Query().Get("category"),
			Organic:  organic,
			Search:   r.URL.Query().Get("q"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// ProductDetail serves a single active product.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParsePathInt(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
