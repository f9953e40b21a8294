//go:build windows

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"

	"github.com/filerelay/filerelay-dock/internal/dragout"
)

// HRESULT values
const (
	sOK                     = 0x00000000
	sFalse                  = 0x00000001
	eNotImpl                = 0x80004001
	eNoInterface            = 0x80004002
	ePointer                = 0x80004003
	dvEFormatEtc            = 0x80040064
	dvETymed                = 0x80040069
	oleEAdviseNotSupported  = 0x80040003
	stgEMediumFull          = 0x80030070
	dragDropSDrop           = 0x00040100
	dragDropSCancel         = 0x00040101
	dragDropSUseDefaultCurs = 0x00040102
)

const (
	dataDirGet      = 1
	dvAspectContent = 1

	indexAll int32 = -1
)

var (
	iidIDropSource = ole.NewGUID("{00000122-0000-0000-C000-000000000046}")
	iidIDataObject = ole.NewGUID("{0000010E-0000-0000-C000-000000000046}")
)

// ErrNotInitialized is returned when a drag starts before InitDragDrop.
var ErrNotInitialized = errors.New("OLE drag and drop not initialized")

var oleReady atomic.Bool

// InitDragDrop initialises OLE on the calling thread, which must be the UI
// thread that later runs the drag loop.
func InitDragDrop() error {
	runtime.LockOSThread()
	hr, _, _ := procOleInitialize.Call(0)
	if hr != sOK && hr != sFalse {
		return fmt.Errorf("OleInitialize: %w", ole.NewError(hr))
	}
	oleReady.Store(true)
	return nil
}

// ShutdownDragDrop balances InitDragDrop.
func ShutdownDragDrop() {
	if oleReady.Swap(false) {
		procOleUninitialize.Call()
	}
}

// DragDropper runs the OLE drag loop for a window.
type DragDropper struct {
	win *Window
}

// NewDragDropper creates a runner. win may be nil.
func NewDragDropper(win *Window) *DragDropper {
	return &DragDropper{win: win}
}

// DoDragDrop blocks in the OLE modal loop until the user drops or cancels.
// A cancelled drag reports EffectNone without error.
func (d *DragDropper) DoDragDrop(payload dragout.PayloadProvider, source dragout.Source, allowed dragout.Effect) (dragout.Effect, error) {
	if !oleReady.Load() {
		return dragout.EffectNone, ErrNotInitialized
	}
	if d.win != nil {
		d.win.ReleaseCapture()
	}

	data := newDataObject(payload)
	src := newDropSource(source)

	var effect uint32
	hr, _, _ := procDoDragDrop.Call(
		uintptr(unsafe.Pointer(data)),
		uintptr(unsafe.Pointer(src)),
		uintptr(allowed),
		uintptr(unsafe.Pointer(&effect)),
	)
	comRelease(uintptr(unsafe.Pointer(data)))
	comRelease(uintptr(unsafe.Pointer(src)))

	switch hr {
	case dragDropSDrop:
		return dragout.Effect(effect), nil
	case dragDropSCancel:
		return dragout.EffectNone, nil
	default:
		return dragout.EffectNone, ole.NewError(hr)
	}
}

// formatEtc mirrors FORMATETC.
type formatEtc struct {
	cfFormat uint16
	ptd      uintptr
	dwAspect uint32
	lindex   int32
	tymed    uint32
}

// stgMedium mirrors STGMEDIUM.
type stgMedium struct {
	tymed          uint32
	hGlobal        uintptr
	pUnkForRelease uintptr
}

// comObject is the common head of every object handed to COM: the vtable
// pointer followed by the reference count.
type comObject struct {
	vtbl unsafe.Pointer
	refs int32
}

type dropSourceVtbl struct {
	queryInterface    uintptr
	addRef            uintptr
	release           uintptr
	queryContinueDrag uintptr
	giveFeedback      uintptr
}

type dataObjectVtbl struct {
	queryInterface        uintptr
	addRef                uintptr
	release               uintptr
	getData               uintptr
	getDataHere           uintptr
	queryGetData          uintptr
	getCanonicalFormatEtc uintptr
	setData               uintptr
	enumFormatEtc         uintptr
	dAdvise               uintptr
	dUnadvise             uintptr
	enumDAdvise           uintptr
}

type dropSource struct {
	comObject
	source dragout.Source
}

type dataObject struct {
	comObject
	payload dragout.PayloadProvider
	formats []formatEtc
}

var (
	vtblOnce         sync.Once
	dropSourceVtable *dropSourceVtbl
	dataObjectVtable *dataObjectVtbl

	// Objects stay reachable from Go while COM holds a reference.
	pinMu  sync.Mutex
	pinned = map[uintptr]any{}
)

func initVtables() {
	vtblOnce.Do(func() {
		addRef := syscall.NewCallback(comAddRef)
		release := syscall.NewCallback(comRelease)
		dropSourceVtable = &dropSourceVtbl{
			queryInterface:    syscall.NewCallback(dropSourceQueryInterface),
			addRef:            addRef,
			release:           release,
			queryContinueDrag: syscall.NewCallback(dropSourceQueryContinueDrag),
			giveFeedback:      syscall.NewCallback(dropSourceGiveFeedback),
		}
		dataObjectVtable = &dataObjectVtbl{
			queryInterface:        syscall.NewCallback(dataObjectQueryInterface),
			addRef:                addRef,
			release:               release,
			getData:               syscall.NewCallback(dataObjectGetData),
			getDataHere:           syscall.NewCallback(dataObjectNotImpl3),
			queryGetData:          syscall.NewCallback(dataObjectQueryGetData),
			getCanonicalFormatEtc: syscall.NewCallback(dataObjectGetCanonicalFormatEtc),
			setData:               syscall.NewCallback(dataObjectNotImpl4),
			enumFormatEtc:         syscall.NewCallback(dataObjectEnumFormatEtc),
			dAdvise:               syscall.NewCallback(dataObjectNoAdvise5),
			dUnadvise:             syscall.NewCallback(dataObjectNoAdvise2),
			enumDAdvise:           syscall.NewCallback(dataObjectNoAdvise2),
		}
	})
}

func newDropSource(source dragout.Source) *dropSource {
	initVtables()
	s := &dropSource{source: source}
	s.vtbl = unsafe.Pointer(dropSourceVtable)
	s.refs = 1
	pin(unsafe.Pointer(s), s)
	return s
}

func newDataObject(payload dragout.PayloadProvider) *dataObject {
	initVtables()
	o := &dataObject{payload: payload}
	for _, f := range payload.Formats() {
		o.formats = append(o.formats, formatEtc{
			cfFormat: uint16(f),
			dwAspect: dvAspectContent,
			lindex:   indexAll,
			tymed:    uint32(dragout.MediumGlobal),
		})
	}
	o.vtbl = unsafe.Pointer(dataObjectVtable)
	o.refs = 1
	pin(unsafe.Pointer(o), o)
	return o
}

func pin(p unsafe.Pointer, obj any) {
	pinMu.Lock()
	pinned[uintptr(p)] = obj
	pinMu.Unlock()
}

func unpin(p uintptr) {
	pinMu.Lock()
	delete(pinned, p)
	pinMu.Unlock()
}

func comAddRef(this uintptr) uintptr {
	obj := (*comObject)(unsafe.Pointer(this))
	return uintptr(atomic.AddInt32(&obj.refs, 1))
}

func comRelease(this uintptr) uintptr {
	obj := (*comObject)(unsafe.Pointer(this))
	n := atomic.AddInt32(&obj.refs, -1)
	if n == 0 {
		unpin(this)
	}
	return uintptr(n)
}

func queryInterface(this, riid, ppv uintptr, iid *ole.GUID) uintptr {
	if ppv == 0 {
		return ePointer
	}
	out := (*uintptr)(unsafe.Pointer(ppv))
	guid := (*ole.GUID)(unsafe.Pointer(riid))
	if ole.IsEqualGUID(guid, ole.IID_IUnknown) || ole.IsEqualGUID(guid, iid) {
		*out = this
		comAddRef(this)
		return sOK
	}
	*out = 0
	return eNoInterface
}

func dropSourceQueryInterface(this, riid, ppv uintptr) uintptr {
	return queryInterface(this, riid, ppv, iidIDropSource)
}

func dropSourceQueryContinueDrag(this, escapePressed, keyState uintptr) uintptr {
	s := (*dropSource)(unsafe.Pointer(this))
	switch s.source.QueryContinue(uint32(escapePressed) != 0, dragout.KeyState(keyState)) {
	case dragout.ActionDrop:
		return dragDropSDrop
	case dragout.ActionCancel:
		return dragDropSCancel
	default:
		return sOK
	}
}

func dropSourceGiveFeedback(this, effect uintptr) uintptr {
	return dragDropSUseDefaultCurs
}

func dataObjectQueryInterface(this, riid, ppv uintptr) uintptr {
	return queryInterface(this, riid, ppv, iidIDataObject)
}

// negotiate maps a FORMATETC onto the payload's format check.
func (o *dataObject) negotiate(fe *formatEtc) uintptr {
	if fe == nil {
		return ePointer
	}
	if fe.dwAspect != dvAspectContent {
		return dvEFormatEtc
	}
	switch err := o.payload.QueryFormat(dragout.Format(fe.cfFormat), dragout.Medium(fe.tymed)); {
	case err == nil:
		return sOK
	case errors.Is(err, dragout.ErrUnsupportedMedium):
		return dvETymed
	default:
		return dvEFormatEtc
	}
}

func dataObjectQueryGetData(this, pformatetc uintptr) uintptr {
	o := (*dataObject)(unsafe.Pointer(this))
	return o.negotiate((*formatEtc)(unsafe.Pointer(pformatetc)))
}

func dataObjectGetData(this, pformatetc, pmedium uintptr) uintptr {
	o := (*dataObject)(unsafe.Pointer(this))
	fe := (*formatEtc)(unsafe.Pointer(pformatetc))
	if pmedium == 0 {
		return ePointer
	}
	if hr := o.negotiate(fe); hr != sOK {
		return hr
	}

	buf, err := o.payload.Data(dragout.Format(fe.cfFormat), dragout.MediumGlobal)
	if err != nil {
		log.Debug("payload rejected", "error", err)
		return dvEFormatEtc
	}

	h, err := globalBuffer(buf)
	if err != nil {
		log.Warn("payload allocation failed", "bytes", len(buf), "error", err)
		return stgEMediumFull
	}

	medium := (*stgMedium)(unsafe.Pointer(pmedium))
	medium.tymed = uint32(dragout.MediumGlobal)
	medium.hGlobal = h
	medium.pUnkForRelease = 0
	return sOK
}

func dataObjectGetCanonicalFormatEtc(this, in, out uintptr) uintptr {
	if out != 0 {
		(*formatEtc)(unsafe.Pointer(out)).ptd = 0
	}
	return eNotImpl
}

func dataObjectEnumFormatEtc(this, direction, ppenum uintptr) uintptr {
	if ppenum == 0 {
		return ePointer
	}
	o := (*dataObject)(unsafe.Pointer(this))
	if direction != dataDirGet || len(o.formats) == 0 {
		*(*uintptr)(unsafe.Pointer(ppenum)) = 0
		return eNotImpl
	}
	hr, _, _ := procSHCreateStdEnumFmtEtc.Call(
		uintptr(len(o.formats)),
		uintptr(unsafe.Pointer(&o.formats[0])),
		ppenum,
	)
	return hr
}

func dataObjectNotImpl3(this, a, b uintptr) uintptr {
	return eNotImpl
}

func dataObjectNotImpl4(this, a, b, c uintptr) uintptr {
	return eNotImpl
}

func dataObjectNoAdvise5(this, a, b, c, d uintptr) uintptr {
	return oleEAdviseNotSupported
}

func dataObjectNoAdvise2(this, a uintptr) uintptr {
	return oleEAdviseNotSupported
}

// globalBuffer copies buf into a movable shared global block owned by the
// receiver.
func globalBuffer(buf []byte) (uintptr, error) {
	h, _, err := procGlobalAlloc.Call(ghnd|gmemShare, uintptr(len(buf)))
	if h == 0 {
		return 0, fmt.Errorf("GlobalAlloc: %w", err)
	}
	ptr, _, err := procGlobalLock.Call(h)
	if ptr == 0 {
		procGlobalFree.Call(h)
		return 0, fmt.Errorf("GlobalLock: %w", err)
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), len(buf)), buf)
	procGlobalUnlock.Call(h)
	return h, nil
}
