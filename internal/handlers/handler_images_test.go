package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ImageHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockNoteService *MockNoteService
}

func (suite *ImageHandlerTestSuite) SetupTest() {
	suite.mockNoteService = new(MockNoteService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Currency: new(MockCurrencyService),
		Note:     suite.mockNoteService,
		History:  new(MockHistoryService),
		Auth:     new(MockAuthService),
	})
}

// multipartUpload builds an authenticated multipart POST with the given file
// fields.
func (suite *ImageHandlerTestSuite) multipartUpload(target, fieldName string, filenames []string, caption string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, filename := range filenames {
		part, err := writer.CreateFormFile(fieldName, filename)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("fake image bytes"))
		suite.Require().NoError(err)
	}
	if caption != "" {
		suite.Require().NoError(writer.WriteField("caption", caption))
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionTokenFor("alice")})
	return req
}

// --- Test Cases ---

func (suite *ImageHandlerTestSuite) TestUploadImage_Success() {
	saved := &domain.NoteImage{ID: 11, CurrencyID: 4}
	suite.mockNoteService.On("AttachImage", mock.Anything, int64(4), []byte("fake image bytes"), "chart.png", "weekly", "alice").
		Return(saved, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("/upload_image/4", "image", []string{"chart.png"}, "weekly"))

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Contains(w.Header().Get("Location"), "/dashboard?msg=")
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *ImageHandlerTestSuite) TestUploadImage_ValidationError() {
	suite.mockNoteService.On("AttachImage", mock.Anything, int64(4), mock.Anything, "payload.exe", "", "alice").
		Return(nil, apperrors.ErrValidation).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("/upload_image/4", "image", []string{"payload.exe"}, ""))

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Contains(w.Header().Get("Location"), "error=")
}

func (suite *ImageHandlerTestSuite) TestUploadImage_NoFile() {
	form := url.Values{"caption": {"no file"}}
	req := httptest.NewRequest(http.MethodPost, "/upload_image/4", bytes.NewBufferString(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionTokenFor("alice")})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Contains(w.Header().Get("Location"), "error=")
	suite.mockNoteService.AssertNotCalled(suite.T(), "AttachImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImageHandlerTestSuite) TestUploadMultipleImages_PartialFailure() {
	saved := &domain.NoteImage{ID: 11, CurrencyID: 4}
	suite.mockNoteService.On("AttachImage", mock.Anything, int64(4), mock.Anything, "a.png", "", "alice").
		Return(saved, nil).Once()
	suite.mockNoteService.On("AttachImage", mock.Anything, int64(4), mock.Anything, "b.exe", "", "alice").
		Return(nil, apperrors.ErrValidation).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("/upload_multiple_images/4", "images", []string{"a.png", "b.exe"}, ""))

	suite.Equal(http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	suite.Contains(location, "error=")
	suite.Contains(location, "1")
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *ImageHandlerTestSuite) TestDeleteImage_Success() {
	suite.mockNoteService.On("SoftDeleteImage", mock.Anything, int64(11), "alice", "blurry").Return(nil).Once()

	form := url.Values{"reason": {"blurry"}}
	req := httptest.NewRequest(http.MethodPost, "/delete_image/11", bytes.NewBufferString(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionTokenFor("alice")})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Contains(w.Header().Get("Location"), "/dashboard?msg=")
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *ImageHandlerTestSuite) TestDeleteImage_AlreadyDeleted() {
	suite.mockNoteService.On("SoftDeleteImage", mock.Anything, int64(11), "alice", "").
		Return(apperrors.ErrAlreadyDeleted).Once()

	req := httptest.NewRequest(http.MethodPost, "/delete_image/11", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionTokenFor("alice")})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Contains(w.Header().Get("Location"), "error=")
}

// --- Run Suite ---
func TestImageHandler(t *testing.T) {
	suite.Run(t, new(ImageHandlerTestSuite))
}
