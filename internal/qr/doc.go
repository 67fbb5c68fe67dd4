// Package qr renders clipbridge payloads as scannable QR codes.
//
// Both codes clipbridge shows use error-correction level M with the
// standard quiet-zone margin: the join code (the join address, 220px) and
// the transfer code (the Document, 200px). The pixel size applies to PNG and
// image output; in the terminal a code is drawn with half-block characters,
// one character per module column and two module rows per line.
//
// MaxPayload is a fixed policy ceiling for reliable camera scanning, not the
// format's real capacity. Callers check Fits before rendering the Document;
// the renderer itself only fails when the encoder cannot carry the input.
package qr
