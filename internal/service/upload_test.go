package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository/mocks"
)

var testUploadCtx = context.Background()

// pngHeader is a valid png signature followed by padding, longer than the sniff buffer
var pngHeader = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 600)...)

type uploadServiceTestSuite struct {
	suite.Suite
	uploadSvc     UploadService
	uploadRpsMock *mocks.UploadRepository
	dir           string
}

func (s *uploadServiceTestSuite) SetupTest() {
	s.uploadRpsMock = mocks.NewUploadRepository(s.T())
	s.dir = s.T().TempDir()
	s.uploadSvc = NewUploadService(s.uploadRpsMock, s.dir)
}

func (s *uploadServiceTestSuite) TestStoreSniffsMimeAcrossShortReads() {
	s.uploadRpsMock.On("Create", testUploadCtx, mock.AnythingOfType("*model.FileUpload")).Return(nil).Once()

	// one byte per read call, the sniff must still see the full signature
	src := iotest.OneByteReader(bytes.NewReader(pngHeader))

	s.T().Log("store blob from a reader that never fills the buffer in one call")
	{
		f, err := s.uploadSvc.Store(testUploadCtx, repIdentity, src, "shelf.png", int64(len(pngHeader)))
		s.Require().NoError(err, "store must succeed")
		s.Require().Equal("image/png", f.MimeType, "mime type must be sniffed from full signature")
		s.Require().Equal(".png", filepath.Ext(f.Filename), "original extension must be kept")
		s.Require().Equal(repIdentity.ID, f.UploadedBy, "upload must be attributed to the caller")

		content, err := os.ReadFile(f.FilePath)
		s.Require().NoError(err, "blob must be written under the uploads dir")
		s.Require().Equal(pngHeader, content, "blob must be written completely")
	}
}

func (s *uploadServiceTestSuite) TestStoreBlobSmallerThanSniffBuffer() {
	s.uploadRpsMock.On("Create", testUploadCtx, mock.AnythingOfType("*model.FileUpload")).Return(nil).Once()

	blob := []byte("plain text note")

	s.T().Log("store blob shorter than the sniff buffer")
	{
		f, err := s.uploadSvc.Store(testUploadCtx, repIdentity, bytes.NewReader(blob), "note.txt", 0)
		s.Require().NoError(err, "store must succeed")
		s.Require().Equal(int64(len(blob)), f.FileSize, "size must fall back to bytes written")

		content, err := os.ReadFile(f.FilePath)
		s.Require().NoError(err, "blob must be written under the uploads dir")
		s.Require().Equal(blob, content, "blob must be written completely")
	}
}

func (s *uploadServiceTestSuite) TestDeleteUnknownUpload() {
	s.uploadRpsMock.On("FindByIDAndOwner", testUploadCtx, "4e0b4a93-98d6-43ff-9ce9-1a5e25a97581", repIdentity.ID).
		Return((*model.FileUpload)(nil), nil).Once()

	s.T().Log("delete upload the caller does not own")
	{
		err := s.uploadSvc.Delete(testUploadCtx, repIdentity, "4e0b4a93-98d6-43ff-9ce9-1a5e25a97581")
		s.Require().Error(err, "unknown upload must not be deleted")
	}
}

func TestUploadService(t *testing.T) {
	suite.Run(t, new(uploadServiceTestSuite))
}
