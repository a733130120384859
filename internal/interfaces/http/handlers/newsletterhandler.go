package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inkletter/internal/application/newsletter/usecases"
	"inkletter/internal/domain/newsletter"
	"inkletter/internal/infrastructure/cache"
	"inkletter/internal/shared/logger"
	"inkletter/internal/shared/utils"
)

// SignupCookieName carries the signup session token across the steps of
// the subscription form.
const SignupCookieName = "inkletter_signup"

// Form steps as reported to the client. The client renders whichever
// view the response names, so a replayed or out-of-order submission is
// answered with the step the visitor actually is on.
const (
	StepRegister = "register"
	StepConfirm  = "confirm"
	StepDone     = "done"
)

type NewsletterHandler struct {
	registerUseCase RegisterEmailExecutor
	confirmUseCase  ConfirmByCodeExecutor
	activateUseCase ConfirmByURLExecutor
	resendUseCase   ResendConfirmationExecutor
	sessions        *cache.SignupSessionStore
	logger          logger.Interface
	cookieMaxAge    int
	secureCookies   bool
}

func NewNewsletterHandler(
	registerUC RegisterEmailExecutor,
	confirmUC ConfirmByCodeExecutor,
	activateUC ConfirmByURLExecutor,
	resendUC ResendConfirmationExecutor,
	sessions *cache.SignupSessionStore,
	logger logger.Interface,
	sessionTTL time.Duration,
	secureCookies bool,
) *NewsletterHandler {
	return &NewsletterHandler{
		registerUseCase: registerUC,
		confirmUseCase:  confirmUC,
		activateUseCase: activateUC,
		resendUseCase:   resendUC,
		sessions:        sessions,
		logger:          logger,
		cookieMaxAge:    int(sessionTTL.Seconds()),
		secureCookies:   secureCookies,
	}
}

type RegisterRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Locale string `json:"locale" binding:"omitempty,bcp47_language_tag"`
}

type ConfirmRequest struct {
	Code string `json:"code" binding:"required"`
}

type ResendRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

type StepResponse struct {
	Step  string `json:"step"`
	Email string `json:"email,omitempty"`
}

// Register handles step 1 of the signup form. If the session already
// advanced past this step the submission is answered with the later
// step instead of registering again, so a back-button replay cannot
// restart a signup that is underway.
func (h *NewsletterHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	session := h.currentSession(c)
	if session != nil {
		switch session.State {
		case cache.SignupStateAwaitingCode:
			utils.SuccessResponse(c, http.StatusOK, "confirmation pending, enter the code from your email",
				StepResponse{Step: StepConfirm, Email: session.Email})
			return
		case cache.SignupStateDone:
			utils.SuccessResponse(c, http.StatusOK, "subscription already confirmed",
				StepResponse{Step: StepDone})
			return
		}
	}

	cmd := usecases.RegisterEmailCommand{Email: req.Email, Locale: req.Locale}
	if err := h.registerUseCase.Execute(c.Request.Context(), cmd); err != nil {
		// A pending record for this address means an earlier signup
		// stalled; fall back to resending its confirmation email so the
		// visitor can still finish.
		if !errors.Is(err, newsletter.ErrEmailExists) {
			utils.ErrorResponseWithError(c, err)
			return
		}
		resend := usecases.ResendConfirmationCommand{Email: req.Email}
		if err := h.resendUseCase.Execute(c.Request.Context(), resend); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	if err := h.advanceSession(c, session, cache.SignupStateAwaitingCode, req.Email); err != nil {
		h.logger.Errorw("failed to store signup session", "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "confirmation email sent",
		StepResponse{Step: StepConfirm, Email: req.Email})
}

// Confirm handles step 2 of the signup form: the visitor transcribes
// the code from the confirmation email. The email address comes from
// the session, not the request, so the code is only ever checked
// against the address it was sent to.
func (h *NewsletterHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	session := h.currentSession(c)
	if session == nil || session.State == cache.SignupStateStart {
		utils.ErrorResponse(c, http.StatusConflict, "no signup in progress, submit your email first")
		return
	}
	if session.State == cache.SignupStateDone {
		utils.SuccessResponse(c, http.StatusOK, "subscription already confirmed",
			StepResponse{Step: StepDone})
		return
	}

	cmd := usecases.ConfirmByCodeCommand{Email: session.Email, Code: req.Code}
	if err := h.confirmUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.advanceSession(c, session, cache.SignupStateDone, session.Email); err != nil {
		h.logger.Errorw("failed to store signup session", "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription confirmed",
		StepResponse{Step: StepDone})
}

// Activate handles the clickable activation link from the confirmation
// email. It is stateless: no signup session is consulted, since the
// link may well be opened in a different browser than the form.
func (h *NewsletterHandler) Activate(c *gin.Context) {
	cmd := usecases.ConfirmByURLCommand{
		ObfuscatedEmail: c.Param("email"),
		Token:           c.Param("token"),
	}
	if err := h.activateUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription activated",
		StepResponse{Step: StepDone})
}

// Resend re-dispatches the confirmation email. The address is taken
// from the request body, or from the signup session when the body
// leaves it out.
func (h *NewsletterHandler) Resend(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	email := req.Email
	if email == "" {
		if session := h.currentSession(c); session != nil {
			email = session.Email
		}
	}
	if email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "no email address to resend to")
		return
	}

	cmd := usecases.ResendConfirmationCommand{Email: email}
	if err := h.resendUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "confirmation email sent",
		StepResponse{Step: StepConfirm, Email: email})
}

// currentSession resolves the signup session from the visitor's cookie.
// A missing cookie, an unknown token, and a Redis failure all come back
// as nil: the flow degrades to a fresh signup rather than erroring.
func (h *NewsletterHandler) currentSession(c *gin.Context) *cache.SignupSession {
	token, err := c.Cookie(SignupCookieName)
	if err != nil || token == "" {
		return nil
	}

	session, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil {
		h.logger.Warnw("failed to load signup session", "error", err)
		return nil
	}
	return session
}

// advanceSession moves the session to the given state, minting a token
// and setting the cookie when no session existed yet.
func (h *NewsletterHandler) advanceSession(c *gin.Context, session *cache.SignupSession, state cache.SignupState, email string) error {
	if session == nil {
		token, err := cache.GenerateSessionToken()
		if err != nil {
			return err
		}
		session = &cache.SignupSession{Token: token}
		c.SetCookie(SignupCookieName, token, h.cookieMaxAge, "/", "", h.secureCookies, true)
	}

	session.State = state
	session.Email = email
	return h.sessions.Store(c.Request.Context(), session)
}
