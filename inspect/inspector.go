// Package inspect turns a simulated device into a small web server so
// the clock tree, register activity, and process health can be watched
// from a browser while a program runs.
package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/devsim"
)

// traceRingSize is how many recent register accesses the inspector keeps.
const traceRingSize = 256

// profileDuration is how long /api/profile samples the process.
const profileDuration = 2 * time.Second

// An Inspector serves the state of a simulated device over HTTP.
type Inspector struct {
	device     *devsim.Device
	clocks     func() cmu.Clocks
	portNumber int

	traceLock sync.Mutex
	trace     []devsim.Access
}

// NewInspector creates an Inspector for the device. It registers itself
// as a device hook to keep a ring of recent register accesses.
func NewInspector(d *devsim.Device) *Inspector {
	i := &Inspector{device: d}
	d.AcceptHook(i)
	return i
}

// WithPortNumber sets the port number of the inspector server.
func (i *Inspector) WithPortNumber(portNumber int) *Inspector {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the inspector. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	i.portNumber = portNumber

	return i
}

// RegisterClocks registers the function that reports the current
// resolved clock tree.
func (i *Inspector) RegisterClocks(f func() cmu.Clocks) {
	i.clocks = f
}

// Func keeps the ring of recent register accesses. It is the device-hook
// entry point and not meant to be called directly.
func (i *Inspector) Func(a devsim.Access) {
	i.traceLock.Lock()
	defer i.traceLock.Unlock()

	i.trace = append(i.trace, a)
	if len(i.trace) > traceRingSize {
		i.trace = i.trace[len(i.trace)-traceRingSize:]
	}
}

// StartServer starts the inspector as a web server and returns the URL
// it listens on.
func (i *Inspector) StartServer() string {
	r := mux.NewRouter()
	r.HandleFunc("/api/clocks", i.listClocks)
	r.HandleFunc("/api/device/{block}", i.listBlockState)
	r.HandleFunc("/api/trace", i.listTrace)
	r.HandleFunc("/api/resource", i.listResources)
	r.HandleFunc("/api/profile", i.collectProfile)
	r.HandleFunc("/", i.index)

	actualPort := ":0"
	if i.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(i.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Inspecting device at %s\n", url)

	go func() {
		dieOnErr(http.Serve(listener, r))
	}()

	return url
}

// StartServerAndOpen starts the server and opens it in the default
// browser.
func (i *Inspector) StartServerAndOpen() string {
	url := i.StartServer()
	dieOnErr(browser.OpenURL(url))
	return url
}

func (i *Inspector) index(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, `<html><body><h1>Device inspector</h1><ul>
<li><a href="/api/clocks">clock tree</a></li>
<li><a href="/api/device/CMU">CMU state</a></li>
<li><a href="/api/trace">recent register accesses</a></li>
<li><a href="/api/resource">process resources</a></li>
<li><a href="/api/profile">CPU profile</a></li>
</ul></body></html>`)
}

func (i *Inspector) listClocks(w http.ResponseWriter, _ *http.Request) {
	if i.clocks == nil {
		http.Error(w, "no clock source registered", http.StatusNotFound)
		return
	}

	snapshot := i.clocks()
	tree := make(map[string]uint32, cmu.NumDomains)
	for d := cmu.Domain(0); d < cmu.NumDomains; d++ {
		if f, ok := snapshot.Frequency(d); ok {
			tree[d.String()] = uint32(f)
		}
	}

	writeJSON(w, tree)
}

func (i *Inspector) listBlockState(w http.ResponseWriter, r *http.Request) {
	blocks := map[string]any{
		"CMU":    i.device.CMU,
		"GPIO":   i.device.GPIO,
		"USART0": i.device.USART0,
		"USART1": i.device.USART1,
		"TIMER0": i.device.Timer0,
		"TIMER1": i.device.Timer1,
	}

	block, found := blocks[mux.Vars(r)["block"]]
	if !found {
		http.Error(w, "no such block", http.StatusNotFound)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(block)
	serializer.SetMaxDepth(1)
	dieOnErr(serializer.Serialize(w))
}

func (i *Inspector) listTrace(w http.ResponseWriter, _ *http.Request) {
	i.traceLock.Lock()
	trace := make([]devsim.Access, len(i.trace))
	copy(trace, i.trace)
	i.traceLock.Unlock()

	writeJSON(w, trace)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (i *Inspector) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

type profileEntry struct {
	Function string `json:"function"`
	Flat     int64  `json:"flat"`
}

func (i *Inspector) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	dieOnErr(pprof.StartCPUProfile(buf))
	time.Sleep(profileDuration)
	pprof.StopCPUProfile()

	p, err := profile.Parse(buf)
	dieOnErr(err)

	flat := make(map[string]int64)
	for _, s := range p.Sample {
		if len(s.Location) == 0 || len(s.Value) == 0 {
			continue
		}
		for _, line := range s.Location[0].Line {
			flat[line.Function.Name] += s.Value[0]
		}
	}

	entries := make([]profileEntry, 0, len(flat))
	for name, v := range flat {
		entries = append(entries, profileEntry{Function: name, Flat: v})
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Flat > entries[b].Flat
	})

	writeJSON(w, entries)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	bytes, err := json.Marshal(v)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
