// File: autoconecta/services/listing/workflow.go
package listing

import (
	"context"
	"sync"
	"time"

	"autoconecta/models"
	"autoconecta/services/validation"
	"autoconecta/utils"

	"go.uber.org/zap"
)

// State of the submission workflow. Each submit attempt re-enters at
// StateValidating; terminal states re-arm to StateIdle on the next one.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCheckingSession
	StateUploading
	StatePersisting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateValidating:
		return "Validating"
	case StateCheckingSession:
		return "CheckingSession"
	case StateUploading:
		return "Uploading"
	case StatePersisting:
		return "Persisting"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	}
	return "Unknown"
}

// FailureKind classifies why a submit ended in StateFailed.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureNotAuthenticated
	FailureUpload
	FailurePersistence
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "None"
	case FailureValidation:
		return "ValidationError"
	case FailureNotAuthenticated:
		return "NotAuthenticated"
	case FailureUpload:
		return "UploadError"
	case FailurePersistence:
		return "PersistenceError"
	}
	return "Unknown"
}

// Delay before the client is told to navigate away after a successful
// publication.
const RedirectDelay = 1500 * time.Millisecond

// RedirectTarget is where a successful submit sends the seller.
const RedirectTarget = "/registro-auto"

// Uploader is the slice of the media orchestrator the workflow needs.
type Uploader interface {
	UploadAll(ctx context.Context, files []models.ImageFile) ([]string, error)
}

// Creator is the slice of the listing repository the workflow needs.
type Creator interface {
	Create(listing *models.Listing) (string, error)
}

// Notifier surfaces workflow outcomes to the seller.
type Notifier interface {
	Exito(titulo, mensaje string) *models.Notification
	Error(titulo, mensaje string) *models.Notification
}

// Result is the outcome of one submit attempt.
type Result struct {
	State       State
	Failure     FailureKind
	FieldErrors validation.Errors
	ListingID   string
	ImageURLs   []string
	RedirectTo  string
	RedirectIn  time.Duration
	// Err holds the underlying failure for Upload/Persistence kinds.
	Err error
}

// SubmissionWorkflow composes validation, the session check, the image
// upload and record creation into one submit operation. No external
// call is made before validation and the session check both pass.
type SubmissionWorkflow struct {
	Uploader Uploader
	Repo     Creator
	Notifier Notifier

	mu    sync.Mutex
	state State
}

// State reports the workflow's current state.
func (w *SubmissionWorkflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *SubmissionWorkflow) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

func (w *SubmissionWorkflow) fail(kind FailureKind, err error) *Result {
	w.setState(StateFailed)
	return &Result{State: StateFailed, Failure: kind, Err: err}
}

// Submit runs one attempt. The session comes from the request context's
// cached session, already resolved by middleware; a nil session means
// the seller is not signed in. On success the form is reset wholesale
// to its defaults and the batch is cleared.
func (w *SubmissionWorkflow) Submit(ctx context.Context, form *models.ListingForm, batch *models.ImageBatch, session *utils.AuthSession) *Result {
	logger := utils.GetLogger()

	// Re-arm: a previous terminal state does not persist across attempts.
	w.setState(StateValidating)
	if errs := validation.Listing(form); len(errs) > 0 {
		res := w.fail(FailureValidation, nil)
		res.FieldErrors = errs
		return res
	}

	w.setState(StateCheckingSession)
	if session == nil {
		w.Notifier.Error("No estás autenticado", "Por favor inicia sesión para registrar un vehículo")
		return w.fail(FailureNotAuthenticated, nil)
	}

	var urls []string
	if batch.Len() > 0 {
		w.setState(StateUploading)
		uploaded, err := w.Uploader.UploadAll(ctx, batch.Files())
		if err != nil {
			logger.Error("Submit: image upload failed", zap.String("vendedorId", session.UID), zap.Error(err))
			w.Notifier.Error("Error al registrar", "No se pudo registrar el vehículo")
			return w.fail(FailureUpload, err)
		}
		urls = uploaded
	}

	w.setState(StatePersisting)
	record := buildListing(form, urls, session.UID)
	id, err := w.Repo.Create(record)
	if err != nil {
		logger.Error("Submit: listing persistence failed", zap.String("vendedorId", session.UID), zap.Error(err))
		w.Notifier.Error("Error al registrar", "No se pudo registrar el vehículo")
		// Uploaded images are not rolled back here; see DESIGN.md.
		return w.fail(FailurePersistence, err)
	}

	w.setState(StateSucceeded)
	w.Notifier.Exito("Auto registrado", "El vehículo ha sido publicado exitosamente")

	*form = *models.DefaultListingForm()
	batch.Clear()

	return &Result{
		State:      StateSucceeded,
		ListingID:  id,
		ImageURLs:  urls,
		RedirectTo: RedirectTarget,
		RedirectIn: RedirectDelay,
	}
}

func buildListing(form *models.ListingForm, urls []string, vendedorID string) *models.Listing {
	listing := &models.Listing{
		Marca:             form.Marca,
		Modelo:            form.Modelo,
		Version:           form.Version,
		Moneda:            form.Moneda,
		ColorExterior:     form.ColorExterior,
		ColorInterior:     form.ColorInterior,
		TipoCombustible:   form.TipoCombustible,
		Transmision:       form.Transmision,
		Motor:             form.Motor,
		VIN:               form.VIN,
		Condicion:         form.Condicion,
		Descripcion:       form.Descripcion,
		Imagenes:          urls,
		Caracteristicas:   form.Caracteristicas,
		FechaPublicacion:  time.Now(),
		EstadoPublicacion: models.EstadoActivo,
		VendedorID:        vendedorID,
	}
	if form.Ano != nil {
		listing.Ano = *form.Ano
	}
	if form.Precio != nil {
		listing.Precio = *form.Precio
	}
	if form.Kilometraje != nil {
		listing.Kilometraje = *form.Kilometraje
	}
	return listing
}
