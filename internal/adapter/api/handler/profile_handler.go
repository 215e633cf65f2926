package handler

import (
	"github.com/labstack/echo/v4"

	"flatmatch/internal/usecase"
	"flatmatch/pkg/response"
	"flatmatch/pkg/utils"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// Multi-select fields come in as arrays from the current client and as
// comma-separated strings from imported legacy records, so they bind as
// interface{} and get normalized at scoring time.
type seekerProfileRequest struct {
	Name              string      `json:"name" validate:"required,max=100"`
	Age               interface{} `json:"age"`
	Gender            string      `json:"gender" validate:"omitempty,oneof=male female"`
	MaxRent           interface{} `json:"maxRent"`
	Pets              string      `json:"pets" validate:"omitempty,oneof=yes no any"`
	PersonalityTraits interface{} `json:"personalityTraits"`
	Interests         interface{} `json:"interests"`
	CommunalLiving    interface{} `json:"communalLiving"`
	Values            interface{} `json:"values"`
	LookingFor        string      `json:"lookingFor" validate:"omitempty,max=2000"`
	PhotoURL          string      `json:"photoUrl" validate:"omitempty,url"`
}

type roomProfileRequest struct {
	Name                 string      `json:"name" validate:"required,max=100"`
	MinAge               interface{} `json:"minAge"`
	MaxAge               interface{} `json:"maxAge"`
	GenderPreference     string      `json:"genderPreference" validate:"omitempty,oneof=male female any"`
	Rent                 interface{} `json:"rent"`
	PetsAllowed          string      `json:"petsAllowed" validate:"omitempty,oneof=yes no any"`
	RoomType             string      `json:"roomType" validate:"omitempty,oneof=single double"`
	AvgAge               interface{} `json:"avgAge"`
	Description          string      `json:"description" validate:"omitempty,max=5000"`
	LookingForInFlatmate string      `json:"lookingForInFlatmate" validate:"omitempty,max=2000"`
	PersonalityTraits    interface{} `json:"personalityTraits"`
	Interests            interface{} `json:"interests"`
	CommunalLiving       interface{} `json:"communalLiving"`
	Values               interface{} `json:"values"`
	PhotoURL             string      `json:"photoUrl" validate:"omitempty,url"`
}

func (r seekerProfileRequest) toInput() usecase.SeekerProfileInput {
	return usecase.SeekerProfileInput{
		Name:              r.Name,
		Age:               r.Age,
		Gender:            r.Gender,
		MaxRent:           r.MaxRent,
		Pets:              r.Pets,
		PersonalityTraits: r.PersonalityTraits,
		Interests:         r.Interests,
		CommunalLiving:    r.CommunalLiving,
		Values:            r.Values,
		LookingFor:        r.LookingFor,
		PhotoURL:          r.PhotoURL,
	}
}

func (r roomProfileRequest) toInput() usecase.RoomProfileInput {
	return usecase.RoomProfileInput{
		Name:                 r.Name,
		MinAge:               r.MinAge,
		MaxAge:               r.MaxAge,
		GenderPreference:     r.GenderPreference,
		Rent:                 r.Rent,
		PetsAllowed:          r.PetsAllowed,
		RoomType:             r.RoomType,
		AvgAge:               r.AvgAge,
		Description:          r.Description,
		LookingForInFlatmate: r.LookingForInFlatmate,
		PersonalityTraits:    r.PersonalityTraits,
		Interests:            r.Interests,
		CommunalLiving:       r.CommunalLiving,
		Values:               r.Values,
		PhotoURL:             r.PhotoURL,
	}
}

func (h *ProfileHandler) CreateSeeker(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req seekerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.CreateSeeker(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, profile)
}

func (h *ProfileHandler) GetSeeker(c echo.Context) error {
	profile, err := h.profileUseCase.GetSeeker(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) ListSeekers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	profiles, err := h.profileUseCase.ListSeekers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	total := len(profiles)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, profiles[start:end], int64(total), params.Page, params.PageSize)
}

func (h *ProfileHandler) UpdateSeeker(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req seekerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.UpdateSeeker(c.Request().Context(), uid, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) DeleteSeeker(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.profileUseCase.DeleteSeeker(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile deleted",
	})
}

func (h *ProfileHandler) CreateRoom(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req roomProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.CreateRoom(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, profile)
}

func (h *ProfileHandler) GetRoom(c echo.Context) error {
	profile, err := h.profileUseCase.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) ListRooms(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	profiles, err := h.profileUseCase.ListRooms(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	total := len(profiles)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, profiles[start:end], int64(total), params.Page, params.PageSize)
}

func (h *ProfileHandler) UpdateRoom(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req roomProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.UpdateRoom(c.Request().Context(), uid, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) DeleteRoom(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.profileUseCase.DeleteRoom(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile deleted",
	})
}
