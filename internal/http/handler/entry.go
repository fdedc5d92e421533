package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"entryapi/internal/model"
	"entryapi/internal/repository"
	"entryapi/internal/service"
)

// visualsFieldName is the multipart field under which the form attaches files.
const visualsFieldName = "visuals"

// submitResponse is the success body for POST /api/submit-entry.
type submitResponse struct {
	Message     string  `json:"message"`
	VisualLinks *string `json:"visual_links"`
	EntryID     int64   `json:"entry_id"`
}

// SubmitEntry handles the contest-entry form submission: field validation,
// attachment upload, and the single row insert, all delegated to the entry
// service. exposeErrors controls whether 500 bodies carry internal detail.
func SubmitEntry(svc service.EntryService, exposeErrors bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry := entryFromForm(c)

		var attachments []model.Attachment
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, fh := range form.File[visualsFieldName] {
				f, err := fh.Open()
				if err != nil {
					return writeClientError(c, "Cannot open uploaded file.")
				}
				defer f.Close()

				ct := fh.Header.Get("Content-Type")
				if ct == "" {
					ct = "application/octet-stream"
				}
				attachments = append(attachments, model.Attachment{
					Filename:    fh.Filename,
					ContentType: ct,
					Size:        fh.Size,
					Reader:      f,
				})
			}
		}

		stored, err := svc.Submit(c.UserContext(), entry, attachments)
		if err != nil {
			var (
				valErr    *service.ValidationError
				typeErr   *service.DisallowedTypeError
				upErr     *service.UploadError
				schemaErr *repository.SchemaMismatchError
			)
			switch {
			case errors.As(err, &valErr), errors.As(err, &typeErr):
				return writeClientError(c, err.Error())
			case errors.As(err, &upErr):
				return writeServerError(c, "upload", "Failed to upload attachments.", err, exposeErrors)
			case errors.As(err, &schemaErr):
				// Stale table layout; the log line is the actionable part.
				return writeServerError(c, "persist", "Failed to save entry.", err, exposeErrors)
			default:
				return writeServerError(c, "persist", "Failed to save entry.", err, exposeErrors)
			}
		}

		return c.Status(fiber.StatusOK).JSON(submitResponse{
			Message:     "Entry successfully submitted!",
			VisualLinks: stored.VisualLinks,
			EntryID:     stored.ID,
		})
	}
}

// ListEntries returns entries with limit/offset pagination.
func ListEntries(svc service.EntryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeClientError(c, "Invalid limit.")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeClientError(c, "Invalid offset.")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServerError(c, "list", "Failed to list entries.", err, false)
		}
		return c.JSON(res)
	}
}

// GetEntry returns a single entry by its numeric identifier.
func GetEntry(svc service.EntryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeClientError(c, "Invalid entry id.")
		}

		entry, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrEntryNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(errorResponse{Message: "Entry not found."})
			}
			return writeServerError(c, "read", "Failed to read entry.", err, false)
		}
		return c.JSON(entry)
	}
}

// entryFromForm maps the submitted form fields onto the domain model.
// Every value is taken verbatim; the service layer decides what is required.
func entryFromForm(c *fiber.Ctx) *model.Entry {
	return &model.Entry{
		FullName:              c.FormValue("full_name"),
		EmailAddress:          c.FormValue("email_address"),
		ContactNumber:         c.FormValue("contact_number"),
		Capacity:              c.FormValue("submission_capacity"),
		TeamMembers:           c.FormValue("team_members"),
		ChequeName:            c.FormValue("prize_cheque_name"),
		ConsentDeclarations:   c.FormValue("consent_declarations"),
		Challenge:             c.FormValue("challenge"),
		Insight:               c.FormValue("insight"),
		StrategicIdea:         c.FormValue("strategic_idea"),
		StrategyExecution:     c.FormValue("strategy_execution"),
		ExpectedResults:       c.FormValue("expected_results"),
		EntryTopic:            c.FormValue("entry_topic"),
		ConceptStrategy:       c.FormValue("concept_strategy"),
		Objective:             c.FormValue("objective"),
		Rationale:             c.FormValue("rationale"),
		Measurement:           c.FormValue("measurement"),
		InsightDescription:    c.FormValue("insight_description"),
		StrategicSolution:     c.FormValue("strategic_solution"),
		CreativePlan:          c.FormValue("creative_plan"),
		CommunicationStrategy: c.FormValue("communication_strategy"),
		ResultImpact:          c.FormValue("result_impact"),
		WhyOutstanding:        c.FormValue("why_outstanding"),
		ResultScope:           c.FormValue("result_scope"),
	}
}
