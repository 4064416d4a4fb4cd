package apiv1

import (
	"fmt"
	"time"
	"work-tools-backend/controllers"
	workstathandler "work-tools-backend/lib/workstat"
	"work-tools-backend/middleware"
	apimodels "work-tools-backend/models/api"
	workitemapimodels "work-tools-backend/models/api/workitem"

	"github.com/gofiber/fiber/v2"
)

type workStatApiController struct {
	controllers.BaseAPIController
}

func InitWorkStatApiRouters(app *fiber.App) {
	controller := workStatApiController{}
	app.Route("work_stat", func(router fiber.Router) {
		router.Post("summary", controller.summary)
		router.Post("summary/export", controller.summaryExport)
		router.Post("category", controller.categoryBreakdown)
		router.Post("user", controller.userBreakdown)
		router.Post("monthly/:year", controller.monthlyTrend)
	})
}

func (c *workStatApiController) parseFilter(ctx *fiber.Ctx) (workitemapimodels.WorkItemFilter, error) {
	var filter workitemapimodels.WorkItemFilter
	// пустое тело допустимо, сводка без фильтра
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &filter); err != nil {
			return filter, err
		}
	}
	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}

// @Summary Сводка
// @Tags Статистика
// @Description Сводка по поручениям пространства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workitemapimodels.WorkItemFilter	false	"request body"
// @Success 200 {object} apimodels.Response{data=workstatapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/work_stat/summary [post]
func (c *workStatApiController) summary(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := workstathandler.Instance.Summary(spaceID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка сводки
// @Tags Статистика
// @Description Выгрузка сводки по поручениям в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workitemapimodels.WorkItemFilter	false	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/work_stat/summary/export [post]
func (c *workStatApiController) summaryExport(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	buf, err := workstathandler.Instance.SummaryExportToXls(spaceID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки сводки")
	}
	fileName := fmt.Sprintf("work_report_%v.xlsx", time.Now().Format("02.01.2006"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}

// @Summary Разбивка по категориям
// @Tags Статистика
// @Description Разбивка поручений по категориям
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workitemapimodels.WorkItemFilter	false	"request body"
// @Success 200 {object} apimodels.Response{data=[]workstatapimodels.CategoryBreakdownRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/work_stat/category [post]
func (c *workStatApiController) categoryBreakdown(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := workstathandler.Instance.CategoryBreakdown(spaceID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения разбивки по категориям")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Разбивка по сотрудникам
// @Tags Статистика
// @Description Разбивка поручений по исполнителям
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workitemapimodels.WorkItemFilter	false	"request body"
// @Success 200 {object} apimodels.Response{data=[]workstatapimodels.UserBreakdownRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/work_stat/user [post]
func (c *workStatApiController) userBreakdown(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := workstathandler.Instance.UserBreakdown(spaceID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения разбивки по сотрудникам")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Помесячная динамика
// @Tags Статистика
// @Description Помесячная динамика поручений за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   year          		path    int  				    	true         "год"
// @Param	body body	 workitemapimodels.WorkItemFilter	false	"request body"
// @Success 200 {object} apimodels.Response{data=[]workstatapimodels.MonthlyTrendRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/work_stat/monthly/{year} [post]
func (c *workStatApiController) monthlyTrend(ctx *fiber.Ctx) error {
	year, err := ctx.ParamsInt("year")
	if err != nil || year < 2000 || year > 2100 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный год"))
	}
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	resp, err := workstathandler.Instance.MonthlyTrend(spaceID, year, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения помесячной динамики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
