package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"

	"github.com/bluewaveradio/bluewave-cli/internal/config"
)

const (
	DefaultSampleRate   = beep.SampleRate(44100)
	SpeakerBufferSize   = time.Millisecond * 250
	NetworkReadSize     = 4096
	SampleChannelSize   = 8192
	ReadTimeout         = 5 * time.Second
	VolumeCurveExponent = 0.5
	MinVolumeDB         = -10.0

	// ICY metadata blocks are at most 255*16 bytes.
	maxICYMetadataSize = 4080

	// Occupancy threshold (fraction of SampleChannelSize) at which a dry
	// buffer is considered recovered.
	keepUpRefillFraction = 4
)

// ErrNotSeekable is returned by ICYSource.Seek: a live Shoutcast stream
// has no seekable timeline.
var ErrNotSeekable = errors.New("live stream is not seekable")

type httpStatusError struct {
	StatusCode int
	Status     string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("stream returned status %d: %s", e.StatusCode, e.Status)
}

// Relies on context cancellation to clean up the spawned read goroutine.
type contextReader struct {
	reader  io.Reader
	ctx     context.Context
	timeout time.Duration
}

func (cr *contextReader) Read(p []byte) (n int, err error) {
	select {
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	default:
	}

	timer := time.NewTimer(cr.timeout)
	defer timer.Stop()

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)

	go func() {
		n, err := cr.reader.Read(p)
		select {
		case done <- result{n, err}:
		case <-cr.ctx.Done():
		}
	}()

	select {
	case res := <-done:
		return res.n, res.err
	case <-timer.C:
		return 0, fmt.Errorf("read timeout: no data received for %v", cr.timeout)
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	}
}

// ICYSource streams one Shoutcast MP3 endpoint through beep's speaker,
// lifting ICY status and metadata into engine events. One instance serves
// one connection; the engine builds a fresh one after a failure.
type ICYSource struct {
	url        string
	httpClient *http.Client

	events chan Event
	emitMu sync.Mutex
	closed bool

	mu       sync.Mutex
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	gain     float64
	paused   bool
	sampleCh chan [2]float64

	done     chan struct{}
	doneOnce sync.Once
	runDone  chan struct{}
	started  bool
	wg       sync.WaitGroup
}

// NewICYSource creates a source for the given stream URL.
func NewICYSource(streamURL string) *ICYSource {
	return &ICYSource{
		url: streamURL,
		httpClient: &http.Client{
			Timeout: 0, // no overall timeout, streams are long-lived
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
				DisableCompression:    true,
			},
		},
		events:  make(chan Event, 32),
		gain:    1.0,
		done:    make(chan struct{}),
		runDone: make(chan struct{}),
	}
}

// NewSource is the production SourceFactory.
func NewSource(streamURL string) Source {
	return NewICYSource(streamURL)
}

// Start kicks off connection and playback in the background and returns
// the event channel immediately. Connection problems arrive as
// EventFailed rather than a synchronous error.
func (s *ICYSource) Start(ctx context.Context) (<-chan Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil, errors.New("source already started")
	}
	s.started = true

	go s.run(ctx)
	return s.events, nil
}

func (s *ICYSource) closeDone() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

func (s *ICYSource) emit(ev Event) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
		log.Warn().Stringer("kind", ev.Kind).Msg("Dropping source event, consumer lagging")
	}
}

func (s *ICYSource) closeEvents() {
	s.emitMu.Lock()
	s.closed = true
	close(s.events)
	s.emitMu.Unlock()
}

// fail reports a fatal error and initiates teardown. The failure event is
// delivered before the channel closes.
func (s *ICYSource) fail(err error) {
	s.emit(Event{Kind: EventFailed, Err: err})
	s.closeDone()
}

func (s *ICYSource) run(ctx context.Context) {
	defer close(s.runDone)
	defer s.closeEvents()

	log.Debug().Str("url", s.url).Msg("Connecting to stream")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.fail(fmt.Errorf("failed to create request: %w", err))
		return
	}
	req.Header.Set("User-Agent", fmt.Sprintf("BlueWave-CLI/%s", config.AppVersion))
	req.Header.Set("Icy-MetaData", "1")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.fail(fmt.Errorf("failed to fetch stream: %w", err))
		return
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		s.fail(&httpStatusError{StatusCode: resp.StatusCode, Status: resp.Status})
		return
	}

	var icyMetaint int
	if val := resp.Header.Get("icy-metaint"); val != "" {
		_, _ = fmt.Sscanf(val, "%d", &icyMetaint)
		log.Debug().Int("metaint", icyMetaint).Msg("ICY metadata interval")
	}

	pipeReader, pipeWriter := io.Pipe()

	s.mu.Lock()
	s.sampleCh = make(chan [2]float64, SampleChannelSize)
	s.mu.Unlock()

	timeoutBody := &contextReader{
		reader:  resp.Body,
		ctx:     ctx,
		timeout: ReadTimeout,
	}

	s.wg.Add(1)
	go s.readNetworkStream(ctx, resp.Body, timeoutBody, pipeWriter, icyMetaint)

	streamer, format, err := mp3.Decode(pipeReader)
	if err != nil {
		pipeReader.Close()
		pipeWriter.Close()
		s.fail(fmt.Errorf("failed to decode MP3 stream: %w", err))
		s.wg.Wait()
		return
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(SpeakerBufferSize)); err != nil {
		streamer.Close()
		pipeReader.Close()
		pipeWriter.Close()
		s.fail(fmt.Errorf("failed to initialize audio output: %w", err))
		s.wg.Wait()
		return
	}
	log.Debug().Int("sample_rate", int(format.SampleRate)).Msg("Audio output initialized")

	s.wg.Add(1)
	go s.decodeAndBuffer(ctx, streamer, pipeReader)

	s.mu.Lock()
	wrapper := &bufferedStreamer{source: s}
	s.volume = &effects.Volume{
		Streamer: wrapper,
		Base:     2,
		Volume:   gainToDB(s.gain),
		Silent:   s.gain == 0,
	}
	s.ctrl = &beep.Ctrl{
		Streamer: s.volume,
		Paused:   s.paused,
	}
	ctrl := s.ctrl
	s.mu.Unlock()

	speaker.Play(ctrl)
	s.emit(Event{Kind: EventReady})

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	speaker.Clear()
	pipeReader.Close()
	pipeWriter.Close()
	s.wg.Wait()
	log.Debug().Msg("Stream source stopped")
}

// Pause suspends audio output; the connection stays up.
func (s *ICYSource) Pause() {
	s.setPaused(true)
}

// Resume restarts audio output after Pause.
func (s *ICYSource) Resume() {
	s.setPaused(false)
}

func (s *ICYSource) setPaused(paused bool) {
	s.mu.Lock()
	s.paused = paused
	ctrl := s.ctrl
	s.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Paused = paused
		speaker.Unlock()
	}
}

// SetVolume maps the linear [0,1] gain onto beep's exponential volume.
func (s *ICYSource) SetVolume(gain float64) {
	s.mu.Lock()
	s.gain = gain
	volume := s.volume
	s.mu.Unlock()

	if volume != nil {
		speaker.Lock()
		volume.Volume = gainToDB(gain)
		volume.Silent = gain == 0
		speaker.Unlock()
	}
}

// Seek is unsupported on a live stream.
func (s *ICYSource) Seek(time.Duration) error {
	return ErrNotSeekable
}

// Close tears down the connection and audio output. Idempotent.
func (s *ICYSource) Close() error {
	s.closeDone()

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if started {
		<-s.runDone
	} else {
		s.closeEvents()
	}
	return nil
}

// gainToDB converts a linear gain in [0,1] to the exponent beep's Volume
// effect expects, on a perceptual curve.
func gainToDB(gain float64) float64 {
	if gain <= 0 {
		return MinVolumeDB
	}
	if gain >= 1 {
		return 0
	}

	adjusted := math.Pow(gain, VolumeCurveExponent)
	return (1.0 - adjusted) * MinVolumeDB
}

func (s *ICYSource) readNetworkStream(ctx context.Context, respBody io.ReadCloser, bodyReader io.Reader, pipeWriter *io.PipeWriter, icyMetaint int) {
	var exitErr error

	defer func() {
		respBody.Close()
		if exitErr != nil {
			pipeWriter.CloseWithError(exitErr)
		} else {
			pipeWriter.Close()
		}
		s.wg.Done()
		log.Debug().Msg("Network stream reader stopped")
	}()

	reportError := func(err error) {
		exitErr = err
		s.fail(err)
	}

	chunkSize := int64(icyMetaint)
	if chunkSize == 0 {
		chunkSize = NetworkReadSize
	}

	bufReader := bufio.NewReader(bodyReader)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		default:
			_, err := io.CopyN(pipeWriter, bufReader, chunkSize)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.ErrClosedPipe) || strings.Contains(err.Error(), "closed pipe") {
					return
				}
				if err == io.EOF {
					reportError(errors.New("stream ended unexpectedly"))
				} else {
					reportError(fmt.Errorf("network read error: %w", err))
				}
				return
			}

			if icyMetaint == 0 {
				continue
			}

			metaLenByte, err := bufReader.ReadByte()
			if err != nil {
				if ctx.Err() != nil || err == io.EOF {
					return
				}
				reportError(fmt.Errorf("metadata read error: %w", err))
				return
			}

			metaLen := int(metaLenByte) * 16
			if metaLen > maxICYMetadataSize {
				log.Warn().Int("metaLen", metaLen).Msg("ICY metadata too large, skipping")
				if _, err := io.CopyN(io.Discard, bufReader, int64(metaLen)); err != nil {
					if ctx.Err() != nil {
						return
					}
				}
				continue
			}
			if metaLen == 0 {
				continue
			}

			metaData := make([]byte, metaLen)
			n, err := io.ReadFull(bufReader, metaData)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				reportError(fmt.Errorf("metadata content error: %w", err))
				return
			}

			if title, ok := extractStreamTitle(string(metaData[:n])); ok {
				s.emit(Event{Kind: EventMetadata, StreamTitle: title})
			}
		}
	}
}

// extractStreamTitle pulls the StreamTitle value out of an ICY metadata
// block, e.g. "StreamTitle='Artist - Track';StreamUrl='';".
func extractStreamTitle(meta string) (string, bool) {
	const marker = "StreamTitle='"

	start := strings.Index(meta, marker)
	if start < 0 {
		return "", false
	}
	start += len(marker)

	end := strings.Index(meta[start:], "';")
	if end < 0 {
		return "", false
	}

	return meta[start : start+end], true
}

func (s *ICYSource) decodeAndBuffer(ctx context.Context, streamer beep.StreamSeekCloser, pipeReader *io.PipeReader) {
	s.mu.Lock()
	sampleCh := s.sampleCh
	s.mu.Unlock()

	defer func() {
		streamer.Close()
		pipeReader.Close()
		close(sampleCh)
		s.wg.Done()
		log.Debug().Msg("Decoder stopped")
	}()

	decodedSamples := make([][2]float64, 4096)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		default:
			n, ok := streamer.Stream(decodedSamples)
			if !ok {
				if err := streamer.Err(); err != nil && ctx.Err() == nil {
					s.fail(fmt.Errorf("stream decoding error: %w", err))
				}
				return
			}

			for i := 0; i < n; i++ {
				select {
				case <-ctx.Done():
					return
				case <-s.done:
					return
				case sampleCh <- decodedSamples[i]:
				}
			}
		}
	}
}

// bufferedStreamer feeds decoded samples to the speaker with non-blocking
// reads: an empty channel outputs silence instead of stalling the speaker
// mutex. Underrun and refill edges become BufferEmpty/KeepUp events.
type bufferedStreamer struct {
	source *ICYSource
	dry    bool
	done   bool
}

func (b *bufferedStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	s := b.source

	s.mu.Lock()
	sampleCh := s.sampleCh
	s.mu.Unlock()

	audioEnd := 0

	if !b.done {
		for i := range samples {
			select {
			case sample, more := <-sampleCh:
				if !more {
					b.done = true
				} else {
					samples[i] = sample
					audioEnd = i + 1
				}
			case <-s.done:
				b.done = true
			default:
			}
			if b.done || audioEnd <= i {
				break
			}
		}
	}

	if b.done {
		audioEnd = 0
	}

	for i := audioEnd; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}

	if !b.done {
		if audioEnd == 0 && !b.dry {
			b.dry = true
			s.emit(Event{Kind: EventBufferEmpty})
		} else if b.dry && len(sampleCh) >= SampleChannelSize/keepUpRefillFraction {
			b.dry = false
			s.emit(Event{Kind: EventKeepUp})
		}
	}

	return len(samples), true
}

func (b *bufferedStreamer) Err() error {
	return nil
}
