package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/alimikegami/toy-town/internal/dto"
	"github.com/alimikegami/toy-town/internal/service"
	pkgdto "github.com/alimikegami/toy-town/pkg/dto"
	"github.com/alimikegami/toy-town/pkg/errs"
	"github.com/alimikegami/toy-town/pkg/response"
	"github.com/alimikegami/toy-town/pkg/validator"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const livenessText = "Toy Town Still Running"

type Controller struct {
	toyService  service.ToyService
	blogService service.BlogService
}

func CreateController(e *echo.Echo, toyService service.ToyService, blogService service.BlogService) {
	c := Controller{
		toyService:  toyService,
		blogService: blogService,
	}

	e.GET("/", c.Liveness)
	e.GET("/ping", c.Ping)

	e.POST("/toys", c.AddToy)
	e.GET("/toys", c.GetToys)
	e.GET("/toys/:searchValue", c.SearchToys, unescapeParams)
	e.GET("/toy-details/:id", c.GetToyByID, unescapeParams)
	e.GET("/my-toys/:uid", c.GetToysBySeller, unescapeParams)
	e.GET("/categories/:category", c.GetToysByCategory, unescapeParams)
	e.PATCH("/update-toy-details/:toyId", c.PutToy, unescapeParams)
	e.DELETE("/delete-toy/:id", c.DeleteToy, unescapeParams)

	e.GET("/blogs", c.GetBlogs)
}

func (c *Controller) Liveness(e echo.Context) error {
	return e.String(http.StatusOK, livenessText)
}

func (c *Controller) Ping(e echo.Context) error {
	return response.WriteSuccessResponse(e, livenessText, nil)
}

func (c *Controller) AddToy(e echo.Context) error {
	payload := dto.ToyRequest{}
	if err := e.Bind(&payload); err != nil {
		return badRequest(e, "AddToy", err)
	}

	if err := e.Validate(&payload); err != nil {
		return badRequest(e, "AddToy", err)
	}

	result, err := c.toyService.AddToy(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", result)
}

func (c *Controller) GetToys(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		return badRequest(e, "GetToys", err)
	}

	toys, err := c.toyService.GetToys(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", toys)
}

func (c *Controller) SearchToys(e echo.Context) error {
	toys, err := c.toyService.SearchToys(e.Request().Context(), e.Param("searchValue"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", toys)
}

// GetToyByID answers an unknown identifier with a null payload, not a 404.
func (c *Controller) GetToyByID(e echo.Context) error {
	toy, err := c.toyService.GetToyByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", toy)
}

func (c *Controller) GetToysBySeller(e echo.Context) error {
	filter := pkgdto.Filter{SortBy: e.QueryParam("sortBy")}

	toys, err := c.toyService.GetToysBySeller(e.Request().Context(), e.Param("uid"), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", toys)
}

func (c *Controller) GetToysByCategory(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := (&echo.DefaultBinder{}).BindQueryParams(e, &filter); err != nil {
		return badRequest(e, "GetToysByCategory", err)
	}

	toys, err := c.toyService.GetToysByCategory(e.Request().Context(), e.Param("category"), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", toys)
}

func (c *Controller) PutToy(e echo.Context) error {
	payload := dto.ToyPutRequest{}
	if err := e.Bind(&payload); err != nil {
		return badRequest(e, "PutToy", err)
	}

	if err := e.Validate(&payload); err != nil {
		return badRequest(e, "PutToy", err)
	}

	result, err := c.toyService.PutToy(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", result)
}

func (c *Controller) DeleteToy(e echo.Context) error {
	result, err := c.toyService.DeleteToy(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", result)
}

func (c *Controller) GetBlogs(e echo.Context) error {
	blogs, err := c.blogService.GetBlogs(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", blogs)
}

// unescapeParams decodes path parameters. echo matches on the raw path when
// the request carried escapes that differ from the canonical encoding, and
// leaves the parameter values percent-encoded in that case.
func unescapeParams(next echo.HandlerFunc) echo.HandlerFunc {
	return func(e echo.Context) error {
		if e.Request().URL.RawPath == "" {
			return next(e)
		}

		values := e.ParamValues()
		unescaped := make([]string, len(values))
		for i, value := range values {
			decoded, err := url.PathUnescape(value)
			if err != nil {
				return badRequest(e, "unescapeParams", err)
			}
			unescaped[i] = decoded
		}
		e.SetParamValues(unescaped...)

		return next(e)
	}
}

// badRequest answers a payload that failed binding or validation. Field
// level problems are listed in the envelope's errors.
func badRequest(e echo.Context, component string, err error) error {
	log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", component).Msg("")

	var numErr *dto.NumberError
	if errors.As(err, &numErr) {
		return response.WriteValidationErrorResponse(e, []response.ValidationError{
			{Field: numErr.Field, Tag: "number"},
		})
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return response.WriteValidationErrorResponse(e, vErrs)
	}

	return response.WriteErrorResponse(e, errs.ErrClient, nil)
}
