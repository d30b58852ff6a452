package request

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"beneficios_inss/internal/domain/entities"
)

func TestSetStatusRequest_ResolveStatus(t *testing.T) {
	s, err := SetStatusRequest{Status: " deferido "}.ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != entities.RequestStatusApproved {
		t.Fatalf("expected deferido, got %q", s)
	}

	_, err = SetStatusRequest{Status: "arquivado"}.ResolveStatus()
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateProfileRequest_ToUpdate(t *testing.T) {
	phone := "11 99999-0000"
	r := UpdateProfileRequest{Phone: &phone}
	if r.Empty() {
		t.Fatalf("expected non-empty request")
	}
	u := r.ToUpdate()
	if u.Phone == nil || *u.Phone != phone {
		t.Fatalf("unexpected phone: %+v", u)
	}
	if u.BirthDate != nil || u.Email != nil || u.Address != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", u)
	}
	if !(UpdateProfileRequest{}).Empty() {
		t.Fatalf("expected empty request")
	}
}

func TestReadUploads(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range []struct{ field, name, ct, content string }{
		{FieldDocuments, "rg.pdf", "application/pdf", "%PDF-1.4"},
		{FieldDocumentsV2, "foto.png", "image/png", "png-bytes"},
	} {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.ct)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write([]byte(f.content))
	}
	_ = mw.Close()

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}

	files := DocumentFiles(form)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	uploads, err := ReadUploads(files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uploads[0].Name != "rg.pdf" || uploads[0].ContentType != "application/pdf" || string(uploads[0].Content) != "%PDF-1.4" {
		t.Fatalf("unexpected first upload: %+v", uploads[0])
	}
	if uploads[1].Name != "foto.png" || uploads[1].Size() != int64(len("png-bytes")) {
		t.Fatalf("unexpected second upload: %+v", uploads[1])
	}

	if got := DocumentFiles(nil); got != nil {
		t.Fatalf("expected nil for nil form, got %v", got)
	}
}

func TestDocumentFiles_LeavesFormUntouched(t *testing.T) {
	first := &multipart.FileHeader{Filename: "rg.pdf"}
	spare := &multipart.FileHeader{Filename: "spare.pdf"}
	// room in the backing array past the field's own files
	backing := make([]*multipart.FileHeader, 1, 4)
	backing[0] = first

	form := &multipart.Form{File: map[string][]*multipart.FileHeader{
		FieldDocuments:   backing,
		FieldDocumentsV2: {{Filename: "foto.png"}},
	}}
	full := backing[:2]
	full[1] = spare

	files := DocumentFiles(form)
	if len(files) != 2 || files[0] != first || files[1].Filename != "foto.png" {
		t.Fatalf("unexpected files: %+v", files)
	}
	if full[1] != spare {
		t.Fatalf("DocumentFiles wrote into the form's backing array")
	}
}
