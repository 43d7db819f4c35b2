package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để không block request handling.
// Entries được buffer trong channel và ghi vào các writers từ một goroutine riêng.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo một async hook với nhiều writers.
// bufferSize: kích thước buffer cho log entries (mặc định 1000 nếu <= 0)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block.
// Nếu channel đầy, entry bị bỏ qua để không chặn request.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi trực tiếp (fallback)
		return h.writeEntry(entry)
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy, bỏ qua entry
	}
	return nil
}

// processEntries ghi entries vào writers trong goroutine riêng
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()
	for entry := range h.entries {
		_ = h.writeEntry(entry)
	}
}

// writeEntry format entry và ghi vào tất cả writers
func (h *AsyncHook) writeEntry(entry *logrus.Entry) error {
	var data []byte
	var err error

	if entry.Logger != nil && entry.Logger.Formatter != nil {
		data, err = entry.Logger.Formatter.Format(entry)
	} else {
		line, strErr := entry.String()
		if strErr != nil {
			return strErr
		}
		data = []byte(line)
	}
	if err != nil {
		return err
	}

	for _, writer := range h.writers {
		// Writer lỗi không chặn các writers còn lại
		_, _ = writer.Write(data)
	}
	return nil
}

// Close đóng hook và đợi tất cả entries được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
