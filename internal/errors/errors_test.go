package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SogeMoge/xwsbot/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "pilot not found",
			expected: "NOT_FOUND: pilot not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "squad has no faction",
			expected: "FAILED_PRECONDITION: squad has no faction",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.Unavailable("conversion service returned an error").
		WithMeta("status_code", 404).
		WithMeta("url", "https://xwing-legacy.com/?f=x")

	s.Equal(404, err.Meta["status_code"])
	s.Equal("https://xwing-legacy.com/?f=x", err.Meta["url"])

	err2 := errors.Internalf("boom in %s", "render").WithMeta("channel_id", "c1")
	s.Equal("boom in render", err2.Message)
	s.Equal("c1", err2.Meta["channel_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("dial tcp: connection refused")
	wrapped := errors.Wrap(baseErr, "failed to look up pilot")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to look up pilot", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.FailedPrecondition("list data incomplete").WithMeta("missing", "faction")
	wrapped := errors.Wrap(baseErr, "failed to resolve squad")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal("faction", wrapped.Meta["missing"])

	// the copy must not alias the inner map
	wrapped.WithMeta("extra", true)
	s.NotContains(baseErr.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("context deadline exceeded")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeDeadlineExceeded, "conversion service timed out")

	s.Equal(errors.CodeDeadlineExceeded, wrapped.Code)
	s.Equal("conversion service timed out", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internalf", func() *errors.Error { return errors.Internalf("%s", "test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"Canceled", func() *errors.Error { return errors.Canceled("test") }, errors.CodeCanceled},
		{"DeadlineExceeded", func() *errors.Error { return errors.DeadlineExceeded("test") }, errors.CodeDeadlineExceeded},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Equal(tc.code, err.Code)
			s.Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "outer"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	unavailable := errors.Unavailablef("status %d", 503)
	wrapped := errors.Wrap(unavailable, "fetch failed")

	s.True(errors.IsUnavailable(unavailable))
	s.True(errors.IsUnavailable(wrapped))
	s.False(errors.IsInvalidArgument(wrapped))
	s.True(errors.IsDeadlineExceeded(errors.DeadlineExceeded("after 20s")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("missing pilots")))
	s.True(errors.IsCanceled(errors.Canceled("stop")))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
	s.False(errors.IsInternal(nil))
	s.True(errors.HasCode(wrapped, errors.CodeUnavailable))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user facing").WithMeta("xws", "oldteroch")
	wrapped := errors.Wrap(err, "outer message")

	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("oldteroch", errors.GetMeta(wrapped)["xws"])
	s.Nil(errors.GetMeta(fmt.Errorf("standard error")))
	s.Equal("outer message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeDeadlineExceeded, 504},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
		{errors.Code("SOMETHING_ELSE"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}
