package router

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
)

func normalizePath(controller *RESTController, relativePath string) string {
	path := controller.mountPoint

	if relativePath != "" {
		path = path + "/" + relativePath
	}

	if path[0] != '/' {
		path = "/" + path
	}

	path = strings.ReplaceAll(path, "//", "/")

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	return path
}

func (routerService *RouterService) keyForPathAndMethod(path, method string) string {
	return fmt.Sprintf("%s-%s", method, path)
}

func (controller *RESTController) bindHandlerToController(routerService *RouterService, path, method string) {
	key := routerService.keyForPathAndMethod(path, method)
	otherController, foundPrevious := routerService.handlerToControllerMap[key]

	if foundPrevious {
		panic(fmt.Sprintf("A handler is already registered for %s '%s' by controller '%s'", method, path, otherController.name))
	}

	routerService.handlerToControllerMap[key] = controller
}

func createHandler(handler HandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A handler returned an undefined result. This typically indicates a bug in a handler's implementation.").ToJSON())
			return
		}

		c.JSON(result.StatusCode, result.ToJSON())
	}
}

// createPageHandler renders into a buffer first so a failing template never
// leaves a half-written document on the wire.
func createPageHandler(handler PageHandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil || result.Page == nil {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A page handler returned an undefined result.").ToJSON())
			return
		}

		var buf bytes.Buffer
		if err := result.Page.Render(&buf); err != nil {
			GetLogger(c).Error("Failed to render page", "path", c.FullPath(), "error", err)
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("Failed to render page").ToJSON())
			return
		}

		c.Data(result.StatusCode, "text/html; charset=utf-8", buf.Bytes())
	}
}

func NewRESTController(name, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	mountPoint = strings.ReplaceAll("/"+mountPoint, "//", "/")

	return &RESTController{
		name:       name,
		mountPoint: mountPoint,
		version:    "",
		prepare:    prepare,
	}
}

func NewVersionedRESTController(name, version, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	// Prefixing the version to the mount point at controller creation clarifies routing and leaves no room for ambiguity.
	finalPath := strings.ReplaceAll("/"+version+"/"+mountPoint, "//", "/")

	return &RESTController{
		name:       name,
		mountPoint: finalPath,
		version:    version,
		prepare:    prepare,
	}
}

func (routerService *RouterService) register(
	controller *RESTController,
	method string,
	path string,
	final MiddlewareFunc,
	middlewares []MiddlewareFunc,
) {
	controller.handlerCount++
	mountPoint := normalizePath(controller, path)
	controller.bindHandlerToController(routerService, mountPoint, method)
	routerService.engine.Handle(method, mountPoint, append(middlewares, final)...)
	routerService.logger.Debug("Handler registered", "method", method, "path", mountPoint, "controller", controller.name)
}

func (routerService *RouterService) AddPostHandler(controller *RESTController, path string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.register(controller, http.MethodPost, path, createHandler(handler), middlewares)
}

func (routerService *RouterService) AddGetHandler(controller *RESTController, path string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.register(controller, http.MethodGet, path, createHandler(handler), middlewares)
}

func (routerService *RouterService) AddHeadHandler(controller *RESTController, path string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.register(controller, http.MethodHead, path, createHandler(handler), middlewares)
}

// AddPageHandler registers an HTML endpoint for any method.
func (routerService *RouterService) AddPageHandler(controller *RESTController, method, path string, handler PageHandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.register(controller, method, path, createPageHandler(handler), middlewares)
}
