// Package api assembles the HTTP API: it calls every resource group
// registrar with the router and serves the OpenAPI document at
// GET /open-api.
//
//	doc, err := api.LoadOpenAPI(api.DefaultOpenAPI)
//	r := chi.NewRouter()
//	api.Register(r, doc, authHandler.AuthRoutes, authHandler.MeRoutes, apdHandler.Routes)
package api
