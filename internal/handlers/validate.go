package handlers

import "github.com/go-playground/validator/v10"

// validate checks request body shape after JSON decoding. Domain rules
// (rating grid, capacity bounds) stay in the services.
var validate = validator.New()
