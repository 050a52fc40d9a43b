package resource

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// Optional hooks recognized on request DTOs and models.
type (
	Normalizer interface{ Normalize() }

	// BranchDefaulter fills branch_id from the caller's scope when the body omits it.
	BranchDefaulter interface{ DefaultBranch(branchID uint) }

	// Checker validates cross-field invariants on the final row state,
	// or on a request body whose fields cannot be expressed as tags.
	Checker interface{ Check() helper.FieldErrors }
)

// Handler exposes a Service over HTTP. C is the create DTO, U the (partial) update DTO.
type Handler[T any, C any, U any] struct {
	Service   *Service[T]
	Validator *helper.Validator

	NewModel func(in *C) *T
	Apply    func(in *U, ent *T)
	Rules    func(ent *T) []Rule
	Filters  func(c *fiber.Ctx, sc helperAuth.Scope) ([]Filter, error)
}

func ParseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *Handler[T, C, U]) filters(c *fiber.Ctx) ([]Filter, error) {
	if h.Filters == nil {
		return nil, nil
	}
	return h.Filters(c, helperAuth.ScopeOrZero(c))
}

// check runs model invariants, then datastore rules against the row about to be written.
// Rules are skipped once the input is already rejected.
func (h *Handler[T, C, U]) check(c *fiber.Ctx, ent *T, known helper.FieldErrors) (helper.FieldErrors, error) {
	fe := known
	if ck, ok := any(ent).(Checker); ok {
		fe = fe.Merge(ck.Check())
	}
	if h.Rules == nil || len(fe) > 0 {
		return fe, nil
	}
	return CheckRules(c.UserContext(), h.Service.DB, h.Rules(ent), fe)
}

// Validate runs the struct tags of a parsed body, then its Check hook.
func Validate(v *helper.Validator, in any) helper.FieldErrors {
	fe := v.Struct(in)
	if ck, ok := in.(Checker); ok {
		fe = fe.Merge(ck.Check())
	}
	return fe
}

// Prepare runs the Normalizer and BranchDefaulter hooks of a freshly parsed body.
func Prepare(c *fiber.Ctx, in any) {
	if n, ok := in.(Normalizer); ok {
		n.Normalize()
	}
	if d, ok := in.(BranchDefaulter); ok {
		if sc := helperAuth.ScopeOrZero(c); sc.BranchID != 0 {
			d.DefaultBranch(sc.BranchID)
		}
	}
}

/* ============================================
   READ
============================================ */

func (h *Handler[T, C, U]) List(c *fiber.Ctx) error {
	filters, err := h.filters(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if p, ok := helper.ParsePage(c, helper.DefaultOpts); ok {
		rows, total, err := h.Service.Page(c.UserContext(), p, filters...)
		if err != nil {
			return helper.WriteError(c, err)
		}
		helper.SetPageHeaders(c, total, p)
		return helper.JsonList(c, rows)
	}
	rows, err := h.Service.List(c.UserContext(), filters...)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonList(c, rows)
}

func (h *Handler[T, C, U]) Show(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	ent, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "", ent)
}

func (h *Handler[T, C, U]) Trashed(c *fiber.Ctx) error {
	filters, err := h.filters(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	rows, err := h.Service.Trashed(c.UserContext(), filters...)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonList(c, rows)
}

/* ============================================
   WRITE
============================================ */

func (h *Handler[T, C, U]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	Prepare(c, &in)
	fe := Validate(h.Validator, &in)

	ent := h.NewModel(&in)
	fe, err := h.check(c, ent, fe)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if len(fe) > 0 {
		return helper.JsonValidationError(c, fe)
	}

	out, err := h.Service.Create(c.UserContext(), ent)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonCreated(c, h.Service.Opts.Name+" created", out)
}

func (h *Handler[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	var in U
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	Prepare(c, &in)
	if fe := Validate(h.Validator, &in); len(fe) > 0 {
		return helper.JsonValidationError(c, fe)
	}

	out, err := h.Service.Update(c.UserContext(), id, func(ent *T) error {
		h.Apply(&in, ent)
		fe, err := h.check(c, ent, nil)
		if err != nil {
			return err
		}
		if len(fe) > 0 {
			return fe
		}
		return nil
	})
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonUpdated(c, h.Service.Opts.Name+" updated", out)
}

func (h *Handler[T, C, U]) Delete(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonDeleted(c, h.Service.Opts.Name+" deleted", fiber.Map{"id": id})
}

func (h *Handler[T, C, U]) Restore(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	out, err := h.Service.Restore(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, h.Service.Opts.Name+" restored", out)
}

func (h *Handler[T, C, U]) RestoreAll(c *fiber.Ctx) error {
	filters, err := h.filters(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	n, err := h.Service.RestoreAll(c.UserContext(), filters...)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "restored", fiber.Map{"restored": n})
}

func (h *Handler[T, C, U]) ForceDelete(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if err := h.Service.ForceDelete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonDeleted(c, h.Service.Opts.Name+" permanently deleted", fiber.Map{"id": id})
}

/* ============================================
   ROUTES
============================================ */

// Endpoints is what Mount needs; Handler and the hand-written profile controllers implement it.
type Endpoints interface {
	List(*fiber.Ctx) error
	Show(*fiber.Ctx) error
	Trashed(*fiber.Ctx) error
	Create(*fiber.Ctx) error
	Update(*fiber.Ctx) error
	Delete(*fiber.Ctx) error
	Restore(*fiber.Ctx) error
	RestoreAll(*fiber.Ctx) error
	ForceDelete(*fiber.Ctx) error
}

// Mount registers reads on read and writes on write. Trash endpoints exist only for soft-deletable entities.
func Mount(read, write fiber.Router, path string, h Endpoints, softDelete bool) {
	if read != nil {
		read.Get(path, h.List)
		read.Get(path+"/:id<int>", h.Show)
	}
	if write == nil {
		return
	}
	if softDelete {
		write.Get(path+"/trash", h.Trashed)
		write.Post(path+"/restore-all", h.RestoreAll)
		write.Post(path+"/:id<int>/restore", h.Restore)
		write.Delete(path+"/:id<int>/force", h.ForceDelete)
	}
	write.Post(path, h.Create)
	write.Put(path+"/:id<int>", h.Update)
	write.Patch(path+"/:id<int>", h.Update)
	write.Delete(path+"/:id<int>", h.Delete)
}

// MountHandler mounts a generic Handler using its service's soft-delete flag.
func MountHandler[T any, C any, U any](read, write fiber.Router, path string, h *Handler[T, C, U]) {
	Mount(read, write, path, h, h.Service.Opts.SoftDelete)
}
