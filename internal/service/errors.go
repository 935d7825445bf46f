package service

import (
	"errors"
	"fmt"

	"job-board/internal/patch"
	"job-board/internal/repository"
)

// 业务错误分类。guard、resolver 和 service 返回这些错误 (或包装它们)，
// 由 HTTP 边界统一映射为状态码。
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not allowed to access this resource")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource already exists")
	ErrBadRequest      = errors.New("invalid request")
	ErrEmptyUpdate     = patch.ErrEmptyUpdate
	ErrStoreFailure    = errors.New("internal server error")
)

// 登录失败的两种原因，对外都是 401，内部可区分。
var (
	ErrInvalidIdentifier = fmt.Errorf("%w: invalid identifier", ErrUnauthenticated)
	ErrInvalidPassword   = fmt.Errorf("%w: invalid password", ErrUnauthenticated)
)

// mapRepoError 把仓库层错误映射为业务错误。未识别的错误包装为 ErrStoreFailure，
// 原始错误保留在链上供日志使用。
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateEntry):
		return ErrConflict
	case errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("%w: referenced record does not exist", ErrBadRequest)
	}
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}

// mapPatchError 把选择性更新构造阶段的错误归入 BadRequest / EmptyUpdate。
func mapPatchError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, patch.ErrEmptyUpdate):
		return ErrEmptyUpdate
	case errors.Is(err, patch.ErrUnknownColumn), errors.Is(err, patch.ErrInvalidValue):
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}
