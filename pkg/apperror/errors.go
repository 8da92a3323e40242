package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Charges (CHG) ----

func ErrChargeNotFound() *AppError {
	return New("CHG_001", "Charge does not exist", http.StatusNotFound)
}

func ErrChargeAmountRequired() *AppError {
	return New("CHG_002", "Either amount or currency_amount is required", http.StatusBadRequest)
}

func ErrChargeWalletRequired() *AppError {
	return New("CHG_003", "Either onchainwallet or lnbitswallet is required", http.StatusBadRequest)
}

func ErrChargeAlreadyPaid() *AppError {
	return New("CHG_004", "Charge is already paid", http.StatusBadRequest)
}

func ErrChargeNoWebhook() *AppError {
	return New("CHG_005", "No webhook set", http.StatusBadRequest)
}

func ErrNetworkMismatch(walletNetwork, settingsNetwork string) *AppError {
	return New("CHG_006",
		fmt.Sprintf("Onchain network mismatch: %s != %s", walletNetwork, settingsNetwork),
		http.StatusBadRequest)
}

// ---- Settlement collaborators (SET) ----

func ErrAddressFetch(err error) *AppError {
	return Wrap("SET_001", "Error fetching onchain address", http.StatusBadRequest, err)
}

func ErrInvoiceCreate(err error) *AppError {
	return Wrap("SET_002", "Error creating invoice", http.StatusBadRequest, err)
}

func ErrRateLookup(currency string, err error) *AppError {
	return Wrap("SET_003", fmt.Sprintf("Error fetching %s rate", currency), http.StatusBadRequest, err)
}

func ErrBalanceFetch(err error) *AppError {
	return Wrap("SET_004", "Error fetching onchain balance", http.StatusBadGateway, err)
}

// ---- Themes (THM) ----

func ErrThemeNotFound() *AppError {
	return New("THM_001", "Theme does not exist", http.StatusNotFound)
}

// ---- Auth (AUTH) ----

func ErrInvalidAPIKey() *AppError {
	return New("AUTH_001", "Invalid or missing API key", http.StatusUnauthorized)
}

func ErrAdminKeyRequired() *AppError {
	return New("AUTH_002", "Admin key required", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("CHG_000", message, http.StatusBadRequest)
}
