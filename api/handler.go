package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct{}

func NewSchedulerHandlerImpl() *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyRoundRobin)
}

// AllAlgorithms runs every policy over its own copy of the request and
// keys the results by policy name. The request must carry a time quantum
// since round robin is part of the set.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	results := make(map[string]responses.ScheduleResponse, len(schedulers.PolicyNames()))
	for _, name := range schedulers.PolicyNames() {
		policy, err := schedulers.PolicyForName(name, request.TimeQuantum)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		response, err := schedulers.Schedule(policy, &request)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		results[name] = response
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policyName string) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	policy, err := schedulers.PolicyForName(policyName, request.TimeQuantum)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	response, err := schedulers.Schedule(policy, &request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(response)
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
