// Package router đăng ký các route thuộc domain Registration:
// đăng ký câu lạc bộ / doanh nghiệp và tra cứu trạng thái duyệt.
package router

import (
	"github.com/gofiber/fiber/v3"

	registrationhdl "github.com/Angelaliii/SA2/internal/api/registration/handler"
)

// Register đăng ký tất cả route registration lên group api
func Register(api fiber.Router, handler *registrationhdl.RegistrationHandler) {
	// Submission nhận multipart/form-data, các field tùy theo kind
	api.Post("/register/club", handler.HandleRegisterClub)
	api.Post("/register/company", handler.HandleRegisterCompany)

	// Tra cứu trạng thái theo query param id
	api.Get("/club-status", handler.HandleClubStatus)
	api.Get("/company-status", handler.HandleCompanyStatus)
}
