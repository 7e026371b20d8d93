// Package checkout turns a cart into an order message and a WhatsApp deep
// link. Orders are not placed through the API: the shop confirms them over
// WhatsApp, so the client only has to total the cart, add delivery and
// format the text.
package checkout
