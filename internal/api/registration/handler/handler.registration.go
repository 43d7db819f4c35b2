package registrationhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Angelaliii/SA2/internal/api/base/handler"
	registrationmodels "github.com/Angelaliii/SA2/internal/api/registration/models"
	registrationsvc "github.com/Angelaliii/SA2/internal/api/registration/service"
	"github.com/Angelaliii/SA2/internal/common"
)

// RegistrationHandler xử lý các endpoint đăng ký và tra cứu trạng thái
// cho cả câu lạc bộ và doanh nghiệp. Hai kind dùng chung một luồng xử lý,
// chỉ khác KindConfig truyền vào service.
type RegistrationHandler struct {
	service *registrationsvc.RegistrationService
}

// NewRegistrationHandler tạo mới RegistrationHandler
func NewRegistrationHandler(service *registrationsvc.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
	}
}

// HandleRegisterClub xử lý submission đăng ký câu lạc bộ
//
// Endpoint: POST /api/register/club (multipart/form-data)
func (h *RegistrationHandler) HandleRegisterClub(c fiber.Ctx) error {
	return h.register(c, registrationmodels.ClubKind)
}

// HandleRegisterCompany xử lý submission đăng ký doanh nghiệp
//
// Endpoint: POST /api/register/company (multipart/form-data)
func (h *RegistrationHandler) HandleRegisterCompany(c fiber.Ctx) error {
	return h.register(c, registrationmodels.CompanyKind)
}

// HandleClubStatus tra cứu trạng thái đăng ký câu lạc bộ
//
// Endpoint: GET /api/club-status?id=<clubId>
func (h *RegistrationHandler) HandleClubStatus(c fiber.Ctx) error {
	return h.status(c, registrationmodels.ClubKind)
}

// HandleCompanyStatus tra cứu trạng thái đăng ký doanh nghiệp
//
// Endpoint: GET /api/company-status?id=<companyId>
func (h *RegistrationHandler) HandleCompanyStatus(c fiber.Ctx) error {
	return h.status(c, registrationmodels.CompanyKind)
}

func (h *RegistrationHandler) register(c fiber.Ctx, kind registrationmodels.KindConfig) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		form, err := c.MultipartForm()
		if err != nil {
			return basehdl.Failure(c, common.NewError(common.ErrCodeValidationFormat, "invalid multipart form", common.StatusBadRequest, err.Error()))
		}

		receipt, err := h.service.Register(c.Context(), kind, form)
		if err != nil {
			return basehdl.Failure(c, err)
		}

		return basehdl.Success(c, kind.SuccessMessage, receipt.ToResponseData(kind))
	})
}

func (h *RegistrationHandler) status(c fiber.Ctx, kind registrationmodels.KindConfig) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		report, err := h.service.Status(c.Context(), kind, c.Query("id"))
		if err != nil {
			return basehdl.Failure(c, err)
		}

		return basehdl.Success(c, "", report.ToResponseData(kind))
	})
}
