// Package metrics defines Prometheus collectors for windows processed,
// events emitted, quadrants masked by the BFT folder, and per-window
// processing latency. The search orchestrator reports the window,
// event and latency figures through ObserveWindow; the masked-quadrant
// counter is only updated by callers of ObserveQuadrantMasked. A nil
// *Recorder disables instrumentation entirely, keeping the core (A-H)
// free of any metrics dependency.
package metrics
